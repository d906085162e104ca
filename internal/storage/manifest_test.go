package storage

import (
	"context"
	"testing"
	"time"
)

func TestManifestRoundTrip(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()
	at := time.Date(2023, 11, 16, 8, 0, 0, 0, time.UTC)

	err := WriteManifest(ctx, store, "manifests/2023/regular/2023020204.json", Manifest{
		GeneratedAt: at,
		RunID:       "run-1",
		GameID:      2023020204,
		Source:      "games/2023/regular/2023020204.json",
		Tables: []TableEntry{
			{Category: "shots", Key: "shots/2023/regular/2023020204.parquet", Rows: 3},
		},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadManifest(ctx, store, "manifests/2023/regular/2023020204.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Version != manifestVersion || got.RunID != "run-1" || !got.GeneratedAt.Equal(at) {
		t.Fatalf("unexpected manifest %+v", got)
	}
	if len(got.Tables) != 1 || got.Tables[0].Rows != 3 {
		t.Fatalf("unexpected tables %+v", got.Tables)
	}
}

func TestManifestDefaults(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()

	if err := WriteManifest(ctx, store, "m.json", Manifest{GameID: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadManifest(ctx, store, "m.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.GeneratedAt.IsZero() || got.Tables == nil {
		t.Fatalf("expected defaults to be filled, got %+v", got)
	}

	_ = store.Put(ctx, "bad.json", []byte("{"))
	if _, err := ReadManifest(ctx, store, "bad.json"); err == nil {
		t.Fatalf("expected decode error")
	}
}
