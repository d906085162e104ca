package nhlapi

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
)

func mapScheduleDay(day scheduleDay) []games.ScheduledGame {
	out := make([]games.ScheduledGame, 0, len(day.Games))
	for _, g := range day.Games {
		out = append(out, games.ScheduledGame{
			ID:           g.ID,
			Season:       g.Season,
			GameType:     g.GameType,
			GameState:    g.GameState,
			Venue:        g.Venue.Default,
			Date:         day.Date,
			StartTimeUTC: g.StartTimeUTC,
			HomeTeamID:   g.HomeTeam.ID,
			AwayTeamID:   g.AwayTeam.ID,
		})
	}
	return out
}

func mapStanding(s standing) teams.Team {
	return teams.Team{
		FullName:         s.TeamName.Default,
		Abbrev:           s.TeamAbbrev.Default,
		CommonName:       s.TeamCommonName.Default,
		Conference:       s.ConferenceName,
		ConferenceAbbrev: s.ConferenceAbbrev,
		Division:         s.DivisionName,
		DivisionAbbrev:   s.DivisionAbbrev,
		LogoURL:          s.TeamLogo,
	}
}
