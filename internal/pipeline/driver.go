// Package pipeline wires providers, extraction, the xG model and storage into
// the jobs the pipeline runs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/extract"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/situation"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/xg"
)

// Job names accepted by Run.
const (
	JobDownload  = "download"
	JobTransform = "transform"
	JobXG        = "xg"
	JobSchedule  = "schedule"
	JobTeams     = "teams"
	JobBackfill  = "backfill"
)

const (
	defaultBackfillDays     = 7
	defaultBackfillInterval = time.Second
)

// Config tunes the jobs.
type Config struct {
	Situation        situation.Config
	XG               xg.Config
	BackfillDays     int
	BackfillInterval time.Duration
}

// Driver runs pipeline jobs against one provider and one store.
type Driver struct {
	provider  providers.DataProvider
	store     storage.Store
	extractor *extract.Extractor
	cfg       Config
	logger    *slog.Logger
	metrics   *metrics.Recorder

	now      func() time.Time
	newRunID func() string
	sleep    func(context.Context, time.Duration)
}

// New constructs a Driver. gameLogs may be nil, leaving player stats null.
func New(provider providers.DataProvider, store storage.Store, gameLogs providers.GameLogLookup, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Driver {
	if cfg.BackfillDays <= 0 {
		cfg.BackfillDays = defaultBackfillDays
	}
	if cfg.BackfillInterval <= 0 {
		cfg.BackfillInterval = defaultBackfillInterval
	}
	return &Driver{
		provider:  provider,
		store:     store,
		extractor: extract.New(gameLogs, cfg.Situation, logger),
		cfg:       cfg,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
		newRunID:  uuid.NewString,
		sleep:     sleepContext,
	}
}

// Run executes the named job once.
func (d *Driver) Run(ctx context.Context, job string) error {
	switch job {
	case JobDownload:
		_, err := d.DownloadGames(ctx, "")
		return err
	case JobTransform:
		_, err := d.TransformPending(ctx)
		return err
	case JobXG:
		return d.TrainXG(ctx)
	case JobSchedule:
		_, err := d.DownloadSchedule(ctx)
		return err
	case JobTeams:
		_, err := d.DownloadTeams(ctx)
		return err
	case JobBackfill:
		_, err := d.Backfill(ctx)
		return err
	default:
		return fmt.Errorf("unknown job %q", job)
	}
}

// run gives fn a run id and a run-scoped logger, then records the outcome.
func (d *Driver) run(ctx context.Context, job string, fn func(ctx context.Context, runID string) error) error {
	runID := d.newRunID()
	logger := d.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, runID), slog.String(logging.FieldJob, job))
	}
	ctx = logging.WithLogger(ctx, logger)

	start := time.Now()
	logging.Info(logger, "job started")
	err := fn(ctx, runID)
	elapsed := time.Since(start)
	d.metrics.RecordJobRun(job, elapsed, err)
	if err != nil {
		logging.Error(logger, "job failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		return err
	}
	logging.Info(logger, "job finished", logging.FieldDurationMS, elapsed.Milliseconds())
	return nil
}

func (d *Driver) loggerFrom(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, d.logger)
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
