package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
)

// PlayByPlayProvider fetches the raw play-by-play document of one game.
type PlayByPlayProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error)
}

// ShiftChartProvider fetches the raw shift chart document of one game.
type ShiftChartProvider interface {
	FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error)
}

// GameLogProvider fetches every game-log entry of a player for one season and season type.
// season is the 8-digit season code, e.g. "20232024".
type GameLogProvider interface {
	FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error)
}

// ScheduleProvider lists scheduled games.
// FetchSchedule returns the games of a single YYYY-MM-DD date; FetchUpcomingSchedule
// returns the current schedule week.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error)
	FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error)
}

// StandingsProvider fetches the current league standings as team seed rows.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) ([]teams.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayByPlayProvider
	ShiftChartProvider
	GameLogProvider
	ScheduleProvider
	StandingsProvider
}
