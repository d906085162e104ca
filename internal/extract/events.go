package extract

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// Faceoffs returns one row per faceoff.
func Faceoffs(game games.Game) []records.Faceoff {
	base := gameFields(game)
	plays := selectPlays(game.Plays, games.EventFaceoff)

	out := make([]records.Faceoff, 0, len(plays))
	for _, p := range plays {
		out = append(out, records.Faceoff{
			GameFields:      base,
			EventFields:     eventFields(p),
			WinningPlayerID: p.Details.WinningPlayerID,
			LosingPlayerID:  p.Details.LosingPlayerID,
		})
	}
	return out
}

// Hits returns one row per hit.
func Hits(game games.Game) []records.Hit {
	base := gameFields(game)
	plays := selectPlays(game.Plays, games.EventHit)

	out := make([]records.Hit, 0, len(plays))
	for _, p := range plays {
		out = append(out, records.Hit{
			GameFields:      base,
			EventFields:     eventFields(p),
			HittingPlayerID: p.Details.HittingPlayerID,
			HitteePlayerID:  p.Details.HitteePlayerID,
		})
	}
	return out
}

// PossessionChanges returns one row per takeaway or giveaway.
func PossessionChanges(game games.Game) []records.PossessionChange {
	base := gameFields(game)
	plays := selectPlays(game.Plays, games.EventTakeaway, games.EventGiveaway)

	out := make([]records.PossessionChange, 0, len(plays))
	for _, p := range plays {
		out = append(out, records.PossessionChange{
			GameFields:  base,
			EventFields: eventFields(p),
			PlayerID:    p.Details.PlayerID,
		})
	}
	return out
}

// Penalties returns one row per penalty.
func Penalties(game games.Game) []records.Penalty {
	base := gameFields(game)
	plays := selectPlays(game.Plays, games.EventPenalty)

	out := make([]records.Penalty, 0, len(plays))
	for _, p := range plays {
		d := p.Details
		out = append(out, records.Penalty{
			GameFields:          base,
			EventFields:         eventFields(p),
			PenaltyCode:         d.TypeCode,
			PenaltyType:         d.DescKey,
			Duration:            d.Duration,
			CommittedByPlayerID: d.CommittedByPlayerID,
			DrawnByPlayerID:     d.DrawnByPlayerID,
			ServedByPlayerID:    d.ServedByPlayerID,
		})
	}
	return out
}
