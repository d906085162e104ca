package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/cache"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/config"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
)

const redisKeyPrefix = "nhl-stats:"

var dialRedis = cache.DialRedis

func buildStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.StorageFS, "":
		return storage.NewFSStore(cfg.Path), nil
	case config.StorageS3:
		return storage.OpenS3Store(ctx, storage.S3Config{
			Bucket:   cfg.Bucket,
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// buildCache returns the game-log cache and, for Redis, a function closing the client.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (cache.Cache, func() error, error) {
	if cfg.RedisURL == "" {
		return cache.NewMemory(), nil, nil
	}
	client, err := dialRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	logging.Info(logger, "game-log cache using redis", "addr", client.Options().Addr)
	return cache.NewRedis(client, redisKeyPrefix), client.Close, nil
}
