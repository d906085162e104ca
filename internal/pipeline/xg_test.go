package pipeline

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/tables"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/testutil"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/xg"
)

func shotAt(eventType string, x, y int64) records.Shot {
	var s records.Shot
	s.HomeTeamID = testutil.Int64(testutil.HomeTeamID)
	s.EventOwnerTeamID = testutil.Int64(testutil.HomeTeamID)
	s.HomeTeamDefendingSide = testutil.String("left")
	s.EventType = testutil.String(eventType)
	s.XCoord = testutil.Int64(x)
	s.YCoord = testutil.Int64(y)
	return s
}

func putShots(t *testing.T, store storage.Store, key string, shots []records.Shot) {
	t.Helper()
	data, err := tables.Encode(shots)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := store.Put(context.Background(), key, data); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func TestTrainXGScoresAllStoredShots(t *testing.T) {
	f := newFixture(t, Config{XG: xg.DefaultConfig()})
	ctx := context.Background()

	first := []records.Shot{shotAt("goal", 70, 5), shotAt("goal", 70, 5)}
	for i := 0; i < 5; i++ {
		first = append(first, shotAt("shot-on-goal", 70, 5))
	}
	second := []records.Shot{shotAt("blocked-shot", 70, 5), shotAt("missed-shot", 40, 0)}
	for i := 0; i < 4; i++ {
		second = append(second, shotAt("missed-shot", 70, 5))
	}
	putShots(t, f.store, "shots/2023/regular/2023020204.parquet", first)
	putShots(t, f.store, "shots/2023/regular/2023020205.parquet", second)

	if err := f.driver.TrainXG(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := f.store.Get(ctx, storage.XGShotsKey)
	if err != nil {
		t.Fatalf("expected scored table: %v", err)
	}
	scored, err := tables.DecodeScoredShots(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(scored) != 13 {
		t.Fatalf("expected every shot scored, got %d", len(scored))
	}

	// 11 unblocked attempts at 70,5 with 2 goals; the blocked shot and the lone 40,0 are unscored.
	var valued, empty int
	for _, s := range scored {
		if s.XG == nil {
			empty++
			continue
		}
		valued++
		if *s.XG != 2.0/11.0 {
			t.Fatalf("unexpected xg %v", *s.XG)
		}
	}
	if valued != 11 || empty != 2 {
		t.Fatalf("expected 11 valued and 2 null, got %d and %d", valued, empty)
	}
}

func TestTrainXGKeepsNullsFromStoredShots(t *testing.T) {
	f := newFixture(t, Config{XG: xg.DefaultConfig()})
	ctx := context.Background()

	var stored []records.Shot
	for i := 0; i < 11; i++ {
		stored = append(stored, shotAt("shot-on-goal", 0, 0))
	}
	var noCoords records.Shot
	noCoords.EventType = testutil.String("goal")
	noCoords.HomeTeamDefendingSide = testutil.String("left")
	stored = append(stored, noCoords)

	// Neither team id is known, so a right-side defender must not flip the shot.
	noTeams := shotAt("shot-on-goal", -30, 4)
	noTeams.HomeTeamID = nil
	noTeams.EventOwnerTeamID = nil
	noTeams.HomeTeamDefendingSide = testutil.String("right")
	stored = append(stored, noTeams)
	putShots(t, f.store, "shots/2023/regular/2023020204.parquet", stored)

	if err := f.driver.TrainXG(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := f.store.Get(ctx, storage.XGShotsKey)
	if err != nil {
		t.Fatalf("expected scored table: %v", err)
	}
	scored, err := tables.DecodeScoredShots(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(scored) != 13 {
		t.Fatalf("expected 13 rows, got %d", len(scored))
	}

	for _, s := range scored[:11] {
		if s.XG == nil || *s.XG != 0 {
			t.Fatalf("expected 0 goals over 11 attempts at 0,0, got %v", s.XG)
		}
	}

	missing := scored[11]
	if missing.XCoord != nil || missing.YCoord != nil || missing.XCoordNorm != nil || missing.CoordsCombination != nil {
		t.Fatalf("expected null coordinates, got %+v", missing)
	}
	if missing.XG != nil {
		t.Fatalf("expected null xg for shot without coordinates, got %v", *missing.XG)
	}

	unowned := scored[12]
	if unowned.HomeTeamID != nil || unowned.EventOwnerTeamID != nil {
		t.Fatalf("expected null team ids, got %+v", unowned)
	}
	if unowned.XCoordNorm == nil || *unowned.XCoordNorm != -30 {
		t.Fatalf("expected unflipped x -30, got %v", unowned.XCoordNorm)
	}
	if unowned.XG != nil {
		t.Fatalf("expected null xg for defensive-half shot, got %v", *unowned.XG)
	}
}

func TestTrainXGWithoutShotsWritesNothing(t *testing.T) {
	f := newFixture(t, Config{})
	if err := f.driver.TrainXG(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := f.store.Exists(context.Background(), storage.XGShotsKey); ok {
		t.Fatalf("expected no scored table")
	}
}

func TestTrainXGFailsOnCorruptTable(t *testing.T) {
	f := newFixture(t, Config{})
	_ = f.store.Put(context.Background(), "shots/2023/regular/2023020204.parquet", []byte("not parquet"))
	if err := f.driver.TrainXG(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
