package app

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/cache"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/config"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers/nhlapi"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
)

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: config.ProviderFixture}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
	if _, ok := selectProvider(config.Config{Provider: config.ProviderNHL}, nil).(*nhlapi.Client); !ok {
		t.Fatalf("expected nhlapi client")
	}
	if _, ok := selectProvider(config.Config{Provider: "espn"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for unknown provider")
	}
}

func TestProviderFactoryWrapsProvider(t *testing.T) {
	p := newProviderFactory(nil, nil).build(config.Config{Provider: config.ProviderFixture})
	if _, ok := p.(*fixture.Provider); ok {
		t.Fatalf("expected wrapped provider")
	}
	if _, err := p.FetchPlayByPlay(context.Background(), fixture.GameID); err != nil {
		t.Fatalf("expected wrapped fixture to answer, got %v", err)
	}
}

func TestBuildStore(t *testing.T) {
	s, err := buildStore(context.Background(), config.StorageConfig{Backend: config.StorageFS, Path: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*storage.FSStore); !ok {
		t.Fatalf("expected filesystem store, got %T", s)
	}
	if _, err := buildStore(context.Background(), config.StorageConfig{Backend: "ftp"}); err == nil {
		t.Fatalf("expected unknown backend error")
	}
	if _, err := buildStore(context.Background(), config.StorageConfig{Backend: config.StorageS3}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

func TestBuildCacheDefaultsToMemory(t *testing.T) {
	c, closeFn, err := buildCache(context.Background(), config.CacheConfig{}, nil)
	if err != nil || closeFn != nil {
		t.Fatalf("unexpected result: %v", err)
	}
	if _, ok := c.(*cache.Memory); !ok {
		t.Fatalf("expected memory cache, got %T", c)
	}
}

func TestBuildCacheRedisDialFailure(t *testing.T) {
	orig := dialRedis
	dialRedis = func(context.Context, string) (*redis.Client, error) {
		return nil, errors.New("connection refused")
	}
	defer func() { dialRedis = orig }()

	if _, _, err := buildCache(context.Background(), config.CacheConfig{RedisURL: "redis://localhost:6379"}, nil); err == nil {
		t.Fatalf("expected dial error")
	}
}

func TestBuildCacheUsesRedis(t *testing.T) {
	orig := dialRedis
	dialRedis = func(ctx context.Context, url string) (*redis.Client, error) {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opts), nil
	}
	defer func() { dialRedis = orig }()

	c, closeFn, err := buildCache(context.Background(), config.CacheConfig{RedisURL: "redis://localhost:6379/1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*cache.Redis); !ok || closeFn == nil {
		t.Fatalf("expected redis cache with closer, got %T", c)
	}
	_ = closeFn()
}
