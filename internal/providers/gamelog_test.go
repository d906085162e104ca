package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/cache"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
)

func int64Ptr(v int64) *int64 { return &v }

func gameKey(t *testing.T, id int64) games.GameKey {
	t.Helper()
	key, err := games.ParseGameID(id)
	if err != nil {
		t.Fatalf("parse game id: %v", err)
	}
	return key
}

func TestGameLogLookupFindsEntry(t *testing.T) {
	sp := &scriptedProvider{logs: []players.GameLog{
		{GameID: 2023020203, Goals: int64Ptr(0)},
		{GameID: 2023020204, Goals: int64Ptr(2)},
	}}
	lookup := NewGameLogLookup(sp, nil, 0, nil)

	entry, ok, err := lookup.LookupGameLog(context.Background(), 8478483, gameKey(t, 2023020204))
	if err != nil || !ok {
		t.Fatalf("expected entry, got ok=%v err=%v", ok, err)
	}
	if entry.Goals == nil || *entry.Goals != 2 {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestGameLogLookupMissingGame(t *testing.T) {
	sp := &scriptedProvider{logs: []players.GameLog{{GameID: 2023020203}}}
	lookup := NewGameLogLookup(sp, nil, 0, nil)

	_, ok, err := lookup.LookupGameLog(context.Background(), 1, gameKey(t, 2023020204))
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestGameLogLookupUsesCache(t *testing.T) {
	sp := &scriptedProvider{logs: []players.GameLog{{GameID: 2023020204}, {GameID: 2023020205}}}
	lookup := NewGameLogLookup(sp, cache.NewMemory(), 0, nil)
	ctx := context.Background()

	for _, id := range []int64{2023020204, 2023020205} {
		if _, ok, err := lookup.LookupGameLog(ctx, 1, gameKey(t, id)); err != nil || !ok {
			t.Fatalf("lookup %d: ok=%v err=%v", id, ok, err)
		}
	}
	if sp.calls != 1 {
		t.Fatalf("expected second lookup served from cache, got %d fetches", sp.calls)
	}
}

func TestGameLogLookupRefetchesStaleSeason(t *testing.T) {
	sp := &scriptedProvider{logs: []players.GameLog{{GameID: 2023020204}}}
	lookup := NewGameLogLookup(sp, cache.NewMemory(), 0, nil)
	ctx := context.Background()

	if _, ok, _ := lookup.LookupGameLog(ctx, 1, gameKey(t, 2023020204)); !ok {
		t.Fatalf("expected first game found")
	}
	sp.logs = append(sp.logs, players.GameLog{GameID: 2023020210})

	if _, ok, err := lookup.LookupGameLog(ctx, 1, gameKey(t, 2023020210)); err != nil || !ok {
		t.Fatalf("expected refetch to find new game, ok=%v err=%v", ok, err)
	}
	if sp.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", sp.calls)
	}
}

func TestGameLogLookupPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	lookup := NewGameLogLookup(&scriptedProvider{errs: []error{boom}}, nil, 0, nil)

	if _, _, err := lookup.LookupGameLog(context.Background(), 1, gameKey(t, 2023020204)); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}

	none := NewGameLogLookup(nil, nil, 0, nil)
	if _, _, err := none.LookupGameLog(context.Background(), 1, gameKey(t, 2023020204)); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestGameLogCacheKey(t *testing.T) {
	if got := gameLogCacheKey(8478483, "20232024", games.SeasonTypePlayoff); got != "gamelog:8478483:20232024:3" {
		t.Fatalf("unexpected key %q", got)
	}
}
