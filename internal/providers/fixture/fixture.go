package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
)

// GameID is the id of the bundled play-by-play document.
const GameID int64 = 2023020204

//go:embed game.json
var gameJSON []byte

// Provider returns a static data set useful for local runs and bootstrapping without network access.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchPlayByPlay returns the bundled game for GameID and ErrNotFound otherwise.
func (p *Provider) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	_ = ctx
	if gameID != GameID {
		return nil, fmt.Errorf("fixture game %d: %w", gameID, providers.ErrNotFound)
	}
	return append([]byte(nil), gameJSON...), nil
}

// FetchShiftChart returns an empty shift chart for GameID.
func (p *Provider) FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error) {
	_ = ctx
	if gameID != GameID {
		return nil, fmt.Errorf("fixture shift chart %d: %w", gameID, providers.ErrNotFound)
	}
	return []byte(`{"data":[],"total":0}`), nil
}

// FetchGameLog returns a single stat line for the bundled game.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error) {
	_ = ctx
	_ = playerID
	if season != "20232024" || seasonType != games.SeasonTypeRegular {
		return []players.GameLog{}, nil
	}
	return []players.GameLog{
		{
			GameID:    GameID,
			Goals:     int64Ptr(1),
			Assists:   int64Ptr(0),
			Points:    int64Ptr(1),
			PIM:       int64Ptr(0),
			TOI:       stringPtr("18:42"),
			PlusMinus: int64Ptr(1),
			Shots:     int64Ptr(2),
			Shifts:    int64Ptr(22),
		},
	}, nil
}

// FetchSchedule reports the bundled game as finished on any requested date.
func (p *Provider) FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error) {
	_ = ctx
	return []games.ScheduledGame{
		{
			ID:           int64Ptr(GameID),
			Season:       int64Ptr(20232024),
			GameType:     int64Ptr(int64(games.SeasonTypeRegular)),
			GameState:    games.StateFinal,
			Venue:        stringPtr("Scotiabank Arena"),
			Date:         date,
			StartTimeUTC: stringPtr(date + "T23:00:00Z"),
			HomeTeamID:   int64Ptr(10),
			AwayTeamID:   int64Ptr(20),
		},
	}, nil
}

// FetchUpcomingSchedule returns one future game and one preseason game relative to now.
func (p *Provider) FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error) {
	_ = ctx
	day := p.now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	return []games.ScheduledGame{
		{
			ID:           int64Ptr(2023020300),
			Season:       int64Ptr(20232024),
			GameType:     int64Ptr(int64(games.SeasonTypeRegular)),
			GameState:    games.StateFuture,
			Venue:        stringPtr("Rogers Place"),
			Date:         day,
			StartTimeUTC: stringPtr(day + "T02:00:00Z"),
			HomeTeamID:   int64Ptr(22),
			AwayTeamID:   int64Ptr(10),
		},
		{
			ID:        int64Ptr(2023010099),
			GameType:  int64Ptr(int64(games.SeasonTypePreseason)),
			GameState: games.StateFuture,
			Date:      day,
		},
	}, nil
}

// FetchStandings returns a few teams in no particular order.
func (p *Provider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return []teams.Team{
		team("Toronto Maple Leafs", "TOR", "Maple Leafs", "Eastern", "E", "Atlantic", "A"),
		team("Edmonton Oilers", "EDM", "Oilers", "Western", "W", "Pacific", "P"),
		team("Boston Bruins", "BOS", "Bruins", "Eastern", "E", "Atlantic", "A"),
		team("New York Rangers", "NYR", "Rangers", "Eastern", "E", "Metropolitan", "M"),
	}, nil
}

func team(full, abbrev, common, conference, conferenceAbbrev, division, divisionAbbrev string) teams.Team {
	return teams.Team{
		FullName:         stringPtr(full),
		Abbrev:           stringPtr(abbrev),
		CommonName:       stringPtr(common),
		Conference:       stringPtr(conference),
		ConferenceAbbrev: stringPtr(conferenceAbbrev),
		Division:         stringPtr(division),
		DivisionAbbrev:   stringPtr(divisionAbbrev),
		LogoURL:          stringPtr("https://assets.nhle.com/logos/nhl/svg/" + abbrev + "_light.svg"),
	}
}

func int64Ptr(v int64) *int64    { return &v }
func stringPtr(v string) *string { return &v }
