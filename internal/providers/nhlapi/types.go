package nhlapi

import "github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"

type localized struct {
	Default *string `json:"default"`
}

type scheduleResponse struct {
	GameWeek []scheduleDay `json:"gameWeek"`
}

type scheduleDay struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID           *int64       `json:"id"`
	Season       *int64       `json:"season"`
	GameType     *int64       `json:"gameType"`
	GameState    string       `json:"gameState"`
	Venue        localized    `json:"venue"`
	StartTimeUTC *string      `json:"startTimeUTC"`
	HomeTeam     scheduleTeam `json:"homeTeam"`
	AwayTeam     scheduleTeam `json:"awayTeam"`
}

type scheduleTeam struct {
	ID *int64 `json:"id"`
}

type standingsResponse struct {
	Standings []standing `json:"standings"`
}

type standing struct {
	TeamName         localized `json:"teamName"`
	TeamAbbrev       localized `json:"teamAbbrev"`
	TeamCommonName   localized `json:"teamCommonName"`
	ConferenceName   *string   `json:"conferenceName"`
	ConferenceAbbrev *string   `json:"conferenceAbbrev"`
	DivisionName     *string   `json:"divisionName"`
	DivisionAbbrev   *string   `json:"divisionAbbrev"`
	TeamLogo         *string   `json:"teamLogo"`
}

type gameLogResponse struct {
	GameLog []players.GameLog `json:"gameLog"`
}
