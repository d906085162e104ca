package app

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/config"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers/nhlapi"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	if cfg.Provider == config.ProviderNHL {
		// Shared pacing keeps bursts of game-log lookups under the upstream's throttle.
		base = providers.NewRateLimitedProvider(base, cfg.NHLAPI.MinInterval, f.logger)
	}
	return providers.NewRetryingProvider(base, f.logger, f.metrics, strings.ToLower(cfg.Provider), cfg.NHLAPI.RetryAttempts, cfg.NHLAPI.RetryBackoff)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderNHL:
		return nhlapi.NewClient(nhlapi.Config{
			WebBaseURL:   cfg.NHLAPI.WebBaseURL,
			StatsBaseURL: cfg.NHLAPI.StatsBaseURL,
			Timeout:      cfg.NHLAPI.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
