// Package app assembles the pipeline from configuration and runs it in the
// selected mode.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/config"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/pipeline"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/runner"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/situation"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/xg"
)

var (
	metricsSetup = metrics.Setup
	lambdaStart  = func(handler any) { lambda.Start(handler) }
)

// App owns the long-lived pieces of one pipeline process.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.DataProvider
	driver        *pipeline.Driver
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closers       []func() error

	metricsHandler http.Handler
	runnerStatus   func() runner.Status
}

// New wires metrics, provider, cache, store and driver from cfg.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	recorder, metricsHandler, metricsStop := buildMetrics(ctx, cfg, logger)

	store, err := buildStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	c, closeCache, err := buildCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	provider := newProviderFactory(logger, recorder).build(cfg)
	gameLogs := providers.NewGameLogLookup(provider, c, cfg.Cache.TTL, logger)

	a := newAppWithDeps(cfg, logger, recorder, provider, store, gameLogs)
	a.metricsHandler = metricsHandler
	a.metricsStop = metricsStop
	if closeCache != nil {
		a.closers = append(a.closers, closeCache)
	}
	return a, nil
}

func newAppWithDeps(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider, store storage.Store, gameLogs providers.GameLogLookup) *App {
	driver := pipeline.New(provider, store, gameLogs, pipeline.Config{
		Situation:        situation.Config{PeriodSeconds: cfg.Transform.PeriodSeconds},
		XG:               xg.Config{MinShots: cfg.Transform.MinShots},
		BackfillDays:     cfg.Runner.BackfillDays,
		BackfillInterval: cfg.Runner.BackfillInterval,
	}, logger, recorder)
	return &App{
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		provider: provider,
		driver:   driver,
	}
}

// Run executes the configured job according to the run mode and blocks until
// it completes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	var r *runner.Runner
	if a.cfg.Runner.Mode == config.RunModeDaemon {
		r = runner.New(func(ctx context.Context) error {
			return a.driver.Run(ctx, a.cfg.Job)
		}, a.logger, a.metrics, a.cfg.Runner.Interval)
		a.runnerStatus = r.Status
	}
	a.startOps()
	defer a.shutdown()

	switch a.cfg.Runner.Mode {
	case config.RunModeOnce:
		return a.driver.Run(ctx, a.cfg.Job)
	case config.RunModeDaemon:
		r.Start(ctx)
		<-ctx.Done()
		logging.Info(a.logger, "shutdown signal received")
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return r.Stop(stopCtx)
	case config.RunModeLambda:
		lambdaStart(a.HandleS3Event)
		return nil
	default:
		return fmt.Errorf("unknown run mode %q", a.cfg.Runner.Mode)
	}
}

// startOps serves metrics and probes when telemetry is enabled.
func (a *App) startOps() {
	if a.metricsServer == nil && a.cfg.Metrics.Enabled && a.metricsHandler != nil {
		a.metricsServer = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + a.cfg.Metrics.Port,
				Handler:           newOpsMux(a.metricsHandler, a.runnerStatus, a.logger),
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}
	if a.metricsServer == nil {
		return
	}
	launchServer("metrics", a.metricsServer, a.logger)
}

func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}
	if rl, ok := a.provider.(interface{ Close() }); ok {
		rl.Close()
	}
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logging.Warn(a.logger, "close failed", logging.FieldError, err)
		}
	}
	logging.Info(a.logger, "shutdown complete")
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
		}
	}()
}
