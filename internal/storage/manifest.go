package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const manifestVersion = 1

// Manifest records what a transform run wrote for one game.
type Manifest struct {
	Version     int          `json:"version"`
	GeneratedAt time.Time    `json:"generatedAt"`
	RunID       string       `json:"runId"`
	GameID      int64        `json:"gameId"`
	Source      string       `json:"source"`
	Tables      []TableEntry `json:"tables"`
}

// TableEntry is one table written for the game.
type TableEntry struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Rows     int    `json:"rows"`
}

// WriteManifest stores m as indented JSON at key.
func WriteManifest(ctx context.Context, store Store, key string, m Manifest) error {
	if m.Version == 0 {
		m.Version = manifestVersion
	}
	if m.GeneratedAt.IsZero() {
		m.GeneratedAt = time.Now().UTC()
	}
	if m.Tables == nil {
		m.Tables = []TableEntry{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return store.Put(ctx, key, data)
}

// ReadManifest loads the manifest stored at key.
func ReadManifest(ctx context.Context, store Store, key string) (Manifest, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decoding manifest %s: %w", key, err)
	}
	return m, nil
}
