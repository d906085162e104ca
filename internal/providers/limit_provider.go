package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that spaces upstream calls by interval.
// Calls block until the interval elapses. A non-positive interval disables pacing.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 && next != nil {
		return next
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", "operation", op)
		return ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch", "operation", op)
	return nil
}

func (p *rateLimitedProvider) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	if err := p.wait(ctx, "play-by-play"); err != nil {
		return nil, err
	}
	return p.next.FetchPlayByPlay(ctx, gameID)
}

func (p *rateLimitedProvider) FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error) {
	if err := p.wait(ctx, "shift-chart"); err != nil {
		return nil, err
	}
	return p.next.FetchShiftChart(ctx, gameID)
}

func (p *rateLimitedProvider) FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error) {
	if err := p.wait(ctx, "game-log"); err != nil {
		return nil, err
	}
	return p.next.FetchGameLog(ctx, playerID, season, seasonType)
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error) {
	if err := p.wait(ctx, "schedule"); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, date)
}

func (p *rateLimitedProvider) FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error) {
	if err := p.wait(ctx, "upcoming-schedule"); err != nil {
		return nil, err
	}
	return p.next.FetchUpcomingSchedule(ctx)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx, "standings"); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx)
}
