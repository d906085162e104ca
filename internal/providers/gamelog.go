package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/cache"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
)

const defaultGameLogTTL = 6 * time.Hour

// GameLogLookup resolves one player's stat line for one game.
type GameLogLookup interface {
	LookupGameLog(ctx context.Context, playerID int64, game games.GameKey) (players.GameLog, bool, error)
}

type gameLogLookup struct {
	provider GameLogProvider
	cache    cache.Cache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewGameLogLookup resolves game logs through provider, keeping whole season logs in c
// when it is non-nil. A cached season that lacks the requested game is refetched, since
// logs grow as the season is played.
func NewGameLogLookup(provider GameLogProvider, c cache.Cache, ttl time.Duration, logger *slog.Logger) GameLogLookup {
	if ttl <= 0 {
		ttl = defaultGameLogTTL
	}
	return &gameLogLookup{provider: provider, cache: c, ttl: ttl, logger: logger}
}

func (l *gameLogLookup) LookupGameLog(ctx context.Context, playerID int64, game games.GameKey) (players.GameLog, bool, error) {
	if l.provider == nil {
		return players.GameLog{}, false, ErrProviderUnavailable
	}
	season := game.Season()
	key := gameLogCacheKey(playerID, season, game.SeasonType)

	if logs, ok := l.cached(ctx, key); ok {
		if entry, found := players.Find(logs, game.ID); found {
			return entry, true, nil
		}
	}

	logs, err := l.provider.FetchGameLog(ctx, playerID, season, game.SeasonType)
	if err != nil {
		return players.GameLog{}, false, err
	}
	l.store(ctx, key, logs)

	entry, found := players.Find(logs, game.ID)
	return entry, found, nil
}

func (l *gameLogLookup) cached(ctx context.Context, key string) ([]players.GameLog, bool) {
	if l.cache == nil {
		return nil, false
	}
	raw, ok, err := l.cache.Get(ctx, key)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, l.logger), "game log cache read failed", logging.FieldKey, key, logging.FieldError, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var logs []players.GameLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, false
	}
	return logs, true
}

func (l *gameLogLookup) store(ctx context.Context, key string, logs []players.GameLog) {
	if l.cache == nil {
		return
	}
	raw, err := json.Marshal(logs)
	if err != nil {
		return
	}
	if err := l.cache.Set(ctx, key, raw, l.ttl); err != nil {
		logging.Warn(logging.FromContext(ctx, l.logger), "game log cache write failed", logging.FieldKey, key, logging.FieldError, err)
	}
}

func gameLogCacheKey(playerID int64, season string, seasonType games.SeasonType) string {
	return fmt.Sprintf("gamelog:%d:%s:%d", playerID, season, seasonType.Code())
}
