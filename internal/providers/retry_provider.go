package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial backoff are
// <= 0, defaults are used. Rate limited responses wait at least the advertised Retry-After.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// Close releases the wrapped provider's resources, such as a rate limiter's ticker.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func (r *retryingProvider) FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error) {
	return retry(ctx, r, "play-by-play", func(ctx context.Context) ([]byte, error) {
		return r.inner.FetchPlayByPlay(ctx, gameID)
	})
}

func (r *retryingProvider) FetchShiftChart(ctx context.Context, gameID int64) ([]byte, error) {
	return retry(ctx, r, "shift-chart", func(ctx context.Context) ([]byte, error) {
		return r.inner.FetchShiftChart(ctx, gameID)
	})
}

func (r *retryingProvider) FetchGameLog(ctx context.Context, playerID int64, season string, seasonType games.SeasonType) ([]players.GameLog, error) {
	return retry(ctx, r, "game-log", func(ctx context.Context) ([]players.GameLog, error) {
		return r.inner.FetchGameLog(ctx, playerID, season, seasonType)
	})
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, date string) ([]games.ScheduledGame, error) {
	return retry(ctx, r, "schedule", func(ctx context.Context) ([]games.ScheduledGame, error) {
		return r.inner.FetchSchedule(ctx, date)
	})
}

func (r *retryingProvider) FetchUpcomingSchedule(ctx context.Context) ([]games.ScheduledGame, error) {
	return retry(ctx, r, "upcoming-schedule", func(ctx context.Context) ([]games.ScheduledGame, error) {
		return r.inner.FetchUpcomingSchedule(ctx)
	})
}

func (r *retryingProvider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	return retry(ctx, r, "standings", func(ctx context.Context) ([]teams.Team, error) {
		return r.inner.FetchStandings(ctx)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fn func(context.Context) (T, error)) (T, error) {
	if r.inner == nil {
		var zero T
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider unavailable")
		return zero, ErrProviderUnavailable
	}

	policy := &retryAfterBackOff{BackOff: r.newBackOff()}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	operation := func() (T, error) {
		attempt++
		start := time.Now()
		result, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			policy.next = rlErr.RetryAfter
		}
		if !IsRetryable(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}
	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			"operation", op,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			logging.FieldError, err,
		)
	}

	result, err := backoff.RetryNotifyWithData(operation, b, notify)
	if err != nil {
		r.logWarn(ctx, "provider fetch failed", "operation", op, "attempts", attempt, logging.FieldError, err)
	}
	return result, err
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	logWithProvider(ctx, logger, slog.LevelWarn, r.providerName, msg, args...)
}

// retryAfterBackOff substitutes a server-advertised Retry-After for the next computed delay.
type retryAfterBackOff struct {
	backoff.BackOff
	next time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	delay := b.BackOff.NextBackOff()
	if delay == backoff.Stop {
		return delay
	}
	if b.next > 0 {
		delay, b.next = b.next, 0
	}
	return delay
}
