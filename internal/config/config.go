package config

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds runtime configuration for the pipeline.
type Config struct {
	Job       string
	Provider  string
	NHLAPI    NHLAPIConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Transform TransformConfig
	Runner    RunnerConfig
	Logging   LoggingConfig
	Metrics   MetricsConfig
}

// TransformConfig tunes situation time and the xG model.
type TransformConfig struct {
	PeriodSeconds int
	MinShots      int
}

// RunnerConfig selects how jobs are triggered.
type RunnerConfig struct {
	Mode             string
	Interval         Duration
	BackfillDays     int
	BackfillInterval Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Job:      envOrDefault(envJob, defaultJob),
		Provider: envOrDefault(envProvider, defaultProvider),
		NHLAPI:   loadNHLAPI(),
		Storage:  loadStorage(),
		Cache: CacheConfig{
			RedisURL: envOrDefault(envRedisURL, ""),
			TTL:      durationEnvOrDefault(envGameLogTTL, defaultGameLogTTL),
		},
		Transform: TransformConfig{
			PeriodSeconds: intEnvOrDefault(envPeriodSecs, defaultPeriodSecs),
			MinShots:      countEnvOrDefault(envMinShots, defaultMinShots),
		},
		Runner: RunnerConfig{
			Mode:             envOrDefault(envRunMode, defaultRunMode),
			Interval:         durationEnvOrDefault(envRunInterval, defaultRunInterval),
			BackfillDays:     intEnvOrDefault(envBackfill, defaultBackfillDays),
			BackfillInterval: durationEnvOrDefault(envBackfillGap, defaultBackfillGap),
		},
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// Validate rejects unknown enum values and incomplete storage settings.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(knownJobs, c.Job) {
		errs = append(errs, fmt.Errorf("%s: unknown job %q", envJob, c.Job))
	}
	if c.Provider != ProviderNHL && c.Provider != ProviderFixture {
		errs = append(errs, fmt.Errorf("%s: unknown provider %q", envProvider, c.Provider))
	}
	switch c.Runner.Mode {
	case RunModeOnce, RunModeDaemon, RunModeLambda:
	default:
		errs = append(errs, fmt.Errorf("%s: unknown run mode %q", envRunMode, c.Runner.Mode))
	}
	if c.Transform.MinShots < 0 {
		errs = append(errs, fmt.Errorf("%s: must be zero or more, got %d", envMinShots, c.Transform.MinShots))
	}
	if err := c.Storage.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
