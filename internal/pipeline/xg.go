package pipeline

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/tables"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/xg"
)

// TrainXG rebuilds the expected-goals model from every stored shots table and
// writes the scored shots. With no shot history nothing is written.
func (d *Driver) TrainXG(ctx context.Context) error {
	return d.run(ctx, JobXG, func(ctx context.Context, runID string) error {
		logger := d.loggerFrom(ctx)

		shots, err := d.loadShots(ctx)
		if err != nil {
			return err
		}
		if len(shots) == 0 {
			logging.Warn(logger, "no shots stored, skipping xG")
			return nil
		}

		model := xg.Train(shots, d.cfg.XG)
		scored := xg.Score(shots, model)
		data, err := tables.Encode(scored)
		if err != nil {
			return fmt.Errorf("encoding scored shots: %w", err)
		}
		if err := d.store.Put(ctx, storage.XGShotsKey, data); err != nil {
			return err
		}
		d.metrics.RecordTableWritten(string(records.CategoryShots)+"-xg", len(scored))
		logging.Info(logger, "xG model trained",
			logging.FieldCount, len(scored),
			"locations", len(model),
		)
		return nil
	})
}

func (d *Driver) loadShots(ctx context.Context) ([]records.Shot, error) {
	keys, err := d.store.List(ctx, storage.TablePrefix(records.CategoryShots))
	if err != nil {
		return nil, fmt.Errorf("listing shots: %w", err)
	}
	var all []records.Shot
	for _, key := range keys {
		data, err := d.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		rows, err := tables.DecodeShots(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		all = append(all, rows...)
	}
	return all, nil
}
