package extract

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/players"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/providers"
)

// Players returns one row per roster spot, joined with the player's game log
// entry for this game. Stats stay null when the entry cannot be resolved.
func Players(ctx context.Context, game games.Game, lookup providers.GameLogLookup, logger *slog.Logger) []records.Player {
	base := gameFields(game)
	logger = logging.FromContext(ctx, logger)

	key, keyErr := gameKey(game)
	if keyErr != nil && len(game.RosterSpots) > 0 {
		logging.Warn(logger, "game log join skipped", "err", keyErr)
	}

	out := make([]records.Player, 0, len(game.RosterSpots))
	for _, spot := range game.RosterSpots {
		row := records.Player{
			GameFields:    base,
			PlayerID:      spot.PlayerID,
			TeamID:        spot.TeamID,
			Season:        game.Season,
			FirstName:     spot.FirstName.Default,
			LastName:      spot.LastName.Default,
			SweaterNumber: spot.SweaterNumber,
			PositionCode:  spot.PositionCode,
			Headshot:      spot.Headshot,
		}
		if keyErr == nil && lookup != nil && spot.PlayerID != nil {
			entry, ok, err := lookup.LookupGameLog(ctx, *spot.PlayerID, key)
			switch {
			case err != nil:
				logging.Warn(logger, "game log lookup failed",
					logging.FieldPlayerID, *spot.PlayerID,
					logging.FieldGameID, key.ID,
					logging.FieldError, err,
				)
			case !ok:
				logging.Warn(logger, "game log entry missing",
					logging.FieldPlayerID, *spot.PlayerID,
					logging.FieldGameID, key.ID,
				)
			default:
				applyGameLog(&row, entry)
			}
		}
		out = append(out, row)
	}
	return out
}

func gameKey(game games.Game) (games.GameKey, error) {
	if game.ID == nil {
		return games.GameKey{}, errMissingGameID
	}
	return games.ParseGameID(*game.ID)
}

func applyGameLog(row *records.Player, l players.GameLog) {
	row.Goals = l.Goals
	row.Assists = l.Assists
	row.Points = l.Points
	row.PIM = l.PIM
	row.TOI = l.TOI

	row.GamesStarted = l.GamesStarted
	row.ShotsAgainst = l.ShotsAgainst
	row.GoalsAgainst = l.GoalsAgainst
	row.SavePctg = l.SavePctg
	row.Shutouts = l.Shutouts

	row.PlusMinus = l.PlusMinus
	row.PowerPlayGoals = l.PowerPlayGoals
	row.PowerPlayPoints = l.PowerPlayPoints
	row.GameWinningGoals = l.GameWinningGoals
	row.OTGoals = l.OTGoals
	row.Shots = l.Shots
	row.Shifts = l.Shifts
	row.ShorthandedGoals = l.ShorthandedGoals
	row.ShorthandedPoints = l.ShorthandedPoints
}
