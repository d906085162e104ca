package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/extract"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/tables"
)

var errMissingGameID = errors.New("game id missing")

// TransformGame turns the raw play-by-play document at rawKey into one table per
// non-empty category and records what was written in the game's manifest.
// A document that fails to decode writes nothing.
func (d *Driver) TransformGame(ctx context.Context, rawKey string) (storage.Manifest, error) {
	var manifest storage.Manifest
	err := d.run(ctx, JobTransform, func(ctx context.Context, runID string) error {
		var err error
		manifest, err = d.transformGame(ctx, runID, rawKey)
		return err
	})
	return manifest, err
}

// TransformPending transforms every raw game that has no manifest yet and
// returns how many were transformed. Games that fail are logged and skipped.
func (d *Driver) TransformPending(ctx context.Context) (int, error) {
	transformed := 0
	err := d.run(ctx, JobTransform, func(ctx context.Context, runID string) error {
		logger := d.loggerFrom(ctx)
		keys, err := d.store.List(ctx, storage.RawGamesPrefix)
		if err != nil {
			return fmt.Errorf("listing raw games: %w", err)
		}
		for _, key := range keys {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !storage.IsRawGameKey(key) {
				continue
			}
			game, err := storage.ParseGameKey(key)
			if err != nil {
				logging.Warn(logger, "skipping unrecognised raw key", logging.FieldKey, key, logging.FieldError, err)
				continue
			}
			done, err := d.store.Exists(ctx, storage.ManifestKey(game))
			if err != nil {
				return err
			}
			if done {
				continue
			}
			if _, err := d.transformGame(ctx, runID, key); err != nil {
				logging.Warn(logger, "transform failed", logging.FieldKey, key, logging.FieldError, err)
				continue
			}
			transformed++
		}
		logging.Info(logger, "pending games transformed", logging.FieldCount, transformed)
		return nil
	})
	return transformed, err
}

func (d *Driver) transformGame(ctx context.Context, runID, rawKey string) (storage.Manifest, error) {
	logger := d.loggerFrom(ctx)

	raw, err := d.store.Get(ctx, rawKey)
	if err != nil {
		return storage.Manifest{}, err
	}
	game, err := games.Decode(raw)
	if err != nil {
		return storage.Manifest{}, fmt.Errorf("decoding %s: %w", rawKey, err)
	}
	if game.ID == nil {
		return storage.Manifest{}, fmt.Errorf("%s: %w", rawKey, errMissingGameID)
	}
	key, err := games.ParseGameID(*game.ID)
	if err != nil {
		return storage.Manifest{}, fmt.Errorf("%s: %w", rawKey, err)
	}

	extracted, err := d.extractor.Extract(ctx, game)
	if err != nil {
		return storage.Manifest{}, fmt.Errorf("extracting game %d: %w", key.ID, err)
	}

	manifest := storage.Manifest{
		GeneratedAt: d.now().UTC(),
		RunID:       runID,
		GameID:      key.ID,
		Source:      rawKey,
		Tables:      make([]storage.TableEntry, 0, len(records.Categories)),
	}
	for _, category := range records.Categories {
		rows := extracted.Len(category)
		if rows == 0 {
			continue
		}
		data, err := encodeCategory(extracted, category)
		if err != nil {
			return storage.Manifest{}, fmt.Errorf("encoding %s for game %d: %w", category, key.ID, err)
		}
		tableKey := storage.TableKey(category, key)
		if err := d.store.Put(ctx, tableKey, data); err != nil {
			return storage.Manifest{}, err
		}
		d.metrics.RecordTableWritten(string(category), rows)
		manifest.Tables = append(manifest.Tables, storage.TableEntry{Category: string(category), Key: tableKey, Rows: rows})
	}

	if err := storage.WriteManifest(ctx, d.store, storage.ManifestKey(key), manifest); err != nil {
		return storage.Manifest{}, err
	}
	logging.Info(logger, "game transformed",
		logging.FieldGameID, key.ID,
		logging.FieldCount, len(manifest.Tables),
	)
	return manifest, nil
}

func encodeCategory(t extract.Tables, category records.Category) ([]byte, error) {
	switch category {
	case records.CategoryGames:
		return tables.Encode(t.Games)
	case records.CategoryShots:
		return tables.Encode(t.Shots)
	case records.CategoryFaceoffs:
		return tables.Encode(t.Faceoffs)
	case records.CategoryHits:
		return tables.Encode(t.Hits)
	case records.CategoryPossessionChanges:
		return tables.Encode(t.PossessionChanges)
	case records.CategoryPenalties:
		return tables.Encode(t.Penalties)
	case records.CategoryPlayers:
		return tables.Encode(t.Players)
	case records.CategorySituationTime:
		return tables.Encode(t.SituationTime)
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}
