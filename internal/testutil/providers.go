package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
)

// GameLogs is a GameLogLookup answering from a fixed map keyed by player id.
type GameLogs struct {
	Entries map[int64]players.GameLog
	Err     error

	mu    sync.Mutex
	calls int
}

func (g *GameLogs) LookupGameLog(ctx context.Context, playerID int64, game games.GameKey) (players.GameLog, bool, error) {
	_ = ctx
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.Err != nil {
		return players.GameLog{}, false, g.Err
	}
	entry, ok := g.Entries[playerID]
	if !ok || entry.GameID != game.ID {
		return players.GameLog{}, false, nil
	}
	return entry, true, nil
}

// Calls returns how many lookups were made.
func (g *GameLogs) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// StubProvider is a DataProvider serving canned documents. Missing play-by-play or
// shift charts answer providers.ErrNotFound; FailGames forces an error for an id.
type StubProvider struct {
	PlayByPlay  map[int64][]byte
	ShiftCharts map[int64][]byte
	Schedule    []games.ScheduledGame
	Upcoming    []games.ScheduledGame
	Standings   []teams.Team
	Logs        []players.GameLog
	FailGames   map[int64]error
	Err         error
}

var _ providers.DataProvider = (*StubProvider)(nil)

func (p *StubProvider) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	_ = ctx
	if err := p.failure(gameID); err != nil {
		return nil, err
	}
	raw, ok := p.PlayByPlay[gameID]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", gameID, providers.ErrNotFound)
	}
	return raw, nil
}

func (p *StubProvider) FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error) {
	_ = ctx
	if err := p.failure(gameID); err != nil {
		return nil, err
	}
	raw, ok := p.ShiftCharts[gameID]
	if !ok {
		return nil, fmt.Errorf("shift chart %d: %w", gameID, providers.ErrNotFound)
	}
	return raw, nil
}

func (p *StubProvider) FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error) {
	_ = ctx
	_ = playerID
	_ = season
	_ = seasonType
	return p.Logs, p.Err
}

func (p *StubProvider) FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error) {
	_ = ctx
	_ = date
	return p.Schedule, p.Err
}

func (p *StubProvider) FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error) {
	_ = ctx
	return p.Upcoming, p.Err
}

func (p *StubProvider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return p.Standings, p.Err
}

func (p *StubProvider) failure(gameID int64) error {
	if p.Err != nil {
		return p.Err
	}
	if err, ok := p.FailGames[gameID]; ok {
		return err
	}
	return nil
}

// UnavailableProvider returns ErrProviderUnavailable from every call.
type UnavailableProvider struct{}

var _ providers.DataProvider = UnavailableProvider{}

func (UnavailableProvider) FetchPlayByPlay(context.Context, int64) ([]byte, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchShiftChart(context.Context, int64) ([]byte, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchGameLog(context.Context, int64, string, games.SeasonType) ([]players.GameLog, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchSchedule(context.Context, string) ([]games.ScheduledGame, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchUpcomingSchedule(context.Context) ([]games.ScheduledGame, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchStandings(context.Context) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}
