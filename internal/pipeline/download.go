package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/storage"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/timeutil"
)

// DownloadGames stores the raw play-by-play and shift chart of every finished
// regular season or playoff game played on date (YYYY-MM-DD, default yesterday UTC).
// It returns the number of games stored; a failed single game is logged and skipped.
func (d *Driver) DownloadGames(ctx context.Context, date string) (int, error) {
	if date == "" {
		date = timeutil.Yesterday(d.now())
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}

	stored := 0
	err := d.run(ctx, JobDownload, func(ctx context.Context, _ string) error {
		var err error
		stored, err = d.downloadDate(ctx, date, false)
		return err
	})
	return stored, err
}

// Backfill downloads the configured number of past days, newest first, skipping
// games already stored. Days are spaced by the backfill interval.
func (d *Driver) Backfill(ctx context.Context) (int, error) {
	stored := 0
	err := d.run(ctx, JobBackfill, func(ctx context.Context, _ string) error {
		logger := d.loggerFrom(ctx)
		now := d.now().UTC()
		for i := 1; i <= d.cfg.BackfillDays; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			date := timeutil.FormatDate(now.AddDate(0, 0, -i))
			n, err := d.downloadDate(ctx, date, true)
			if err != nil {
				logging.Warn(logger, "backfill day failed", logging.FieldDate, date, logging.FieldError, err)
			}
			stored += n
			if i < d.cfg.BackfillDays {
				d.sleep(ctx, d.cfg.BackfillInterval)
			}
		}
		logging.Info(logger, "backfill finished", logging.FieldCount, stored)
		return nil
	})
	return stored, err
}

func (d *Driver) downloadDate(ctx context.Context, date string, skipExisting bool) (int, error) {
	logger := d.loggerFrom(ctx)
	start := time.Now()

	schedule, err := d.provider.FetchSchedule(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("fetching schedule for %s: %w", date, err)
	}

	stored := 0
	for _, scheduled := range schedule {
		if err := ctx.Err(); err != nil {
			return stored, err
		}
		if scheduled.ID == nil || scheduled.GameState != games.StateFinal || !scheduled.SeasonType().Downloadable() {
			continue
		}
		key, err := games.ParseGameID(*scheduled.ID)
		if err != nil {
			logging.Warn(logger, "skipping game with invalid id", logging.FieldGameID, *scheduled.ID, logging.FieldError, err)
			continue
		}
		if skipExisting {
			exists, err := d.store.Exists(ctx, storage.RawGameKey(key))
			if err != nil {
				return stored, err
			}
			if exists {
				continue
			}
		}
		if err := d.downloadGame(ctx, key); err != nil {
			logging.Warn(logger, "game download failed", logging.FieldGameID, key.ID, logging.FieldError, err)
			continue
		}
		stored++
	}

	logging.Info(logger, "games downloaded",
		logging.FieldDate, date,
		logging.FieldCount, stored,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return stored, nil
}

// downloadGame stores the play-by-play document; a missing shift chart only warns.
func (d *Driver) downloadGame(ctx context.Context, key games.GameKey) error {
	raw, err := d.provider.FetchPlayByPlay(ctx, key.ID)
	if err != nil {
		return fmt.Errorf("play-by-play: %w", err)
	}
	if err := d.store.Put(ctx, storage.RawGameKey(key), raw); err != nil {
		return err
	}

	shifts, err := d.provider.FetchShiftChart(ctx, key.ID)
	if err != nil {
		logging.Warn(d.loggerFrom(ctx), "shift chart download failed", logging.FieldGameID, key.ID, logging.FieldError, err)
		return nil
	}
	return d.store.Put(ctx, storage.ShiftChartKey(key), shifts)
}
