package storage

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// Fixed prefixes and keys.
const (
	RawGamesPrefix       = "games/"
	RawShiftChartsPrefix = "shift-charts/"
	ManifestsPrefix      = "manifests/"
	ScheduleKey          = "schedule/schedule.parquet"
	TeamsKey             = "teams.parquet"
	XGShotsKey           = "staging/shots-xg.parquet"

	rawExt = ".json"
)

// partition renders the {season}/{season_type}/{game_id} part shared by per-game keys.
func partition(game games.GameKey) string {
	return fmt.Sprintf("%d/%s/%d", game.SeasonStartYear, game.SeasonType, game.ID)
}

// RawGameKey is where a downloaded play-by-play document lives.
func RawGameKey(game games.GameKey) string {
	return RawGamesPrefix + partition(game) + rawExt
}

// IsRawGameKey reports whether key names a downloaded play-by-play document.
// Game summary tables share the games/ folder but are not raw documents.
func IsRawGameKey(key string) bool {
	return strings.HasPrefix(key, RawGamesPrefix) && strings.HasSuffix(key, rawExt)
}

// ShiftChartKey is where a downloaded shift chart lives.
func ShiftChartKey(game games.GameKey) string {
	return RawShiftChartsPrefix + partition(game) + rawExt
}

// TableKey is where one category table of one game lives.
func TableKey(category records.Category, game games.GameKey) string {
	return string(category) + "/" + partition(game) + ".parquet"
}

// TablePrefix lists every table of a category.
func TablePrefix(category records.Category) string {
	return string(category) + "/"
}

// ManifestKey is where the transform manifest of one game lives.
func ManifestKey(game games.GameKey) string {
	return ManifestsPrefix + partition(game) + ".json"
}

// ParseGameKey recovers the game identity from any per-game key. The season and
// season type folders must agree with the id.
func ParseGameKey(key string) (games.GameKey, error) {
	parts := strings.Split(key, "/")
	if len(parts) < 4 {
		return games.GameKey{}, fmt.Errorf("key %q is not a per-game key", key)
	}
	n := len(parts)
	seasonDir, typeDir, file := parts[n-3], parts[n-2], parts[n-1]

	stem := strings.TrimSuffix(file, path.Ext(file))
	game, err := games.ParseGameIDString(stem)
	if err != nil {
		return games.GameKey{}, fmt.Errorf("key %q: %w", key, err)
	}
	if seasonDir != strconv.Itoa(game.SeasonStartYear) || typeDir != game.SeasonType.String() {
		return games.GameKey{}, fmt.Errorf("key %q: folders do not match game %d", key, game.ID)
	}
	return game, nil
}
