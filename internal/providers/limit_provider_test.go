package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &scriptedProvider{}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.FetchSchedule(context.Background(), "2024-01-01"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 5*time.Millisecond {
		t.Fatalf("expected call to wait for ticker, elapsed %s", elapsed)
	}
	if inner.calls != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.calls)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &scriptedProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil).(*rateLimitedProvider)
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchPlayByPlay(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	_, err := rl.FetchStandings(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDisabledReturnsInner(t *testing.T) {
	inner := &scriptedProvider{}
	if got := NewRateLimitedProvider(inner, 0, nil); got != DataProvider(inner) {
		t.Fatalf("expected inner provider when pacing is disabled")
	}
}
