package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/app"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/config"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_PIPELINE_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "nhl-stats-pipeline",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "pipeline setup failed", err)
		return 1
	}
	if err := a.Run(ctx); err != nil {
		logging.Error(logger, "pipeline run failed", err)
		return 1
	}
	return 0
}
