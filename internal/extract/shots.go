package extract

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// Shots returns one row per goal, shot on goal, blocked or missed shot.
func Shots(game games.Game) []records.Shot {
	base := gameFields(game)
	plays := selectPlays(game.Plays, games.EventGoal, games.EventShotOnGoal, games.EventBlockedShot, games.EventMissedShot)

	out := make([]records.Shot, 0, len(plays))
	for _, p := range plays {
		d := p.Details
		out = append(out, records.Shot{
			GameFields:       base,
			EventFields:      eventFields(p),
			ShotType:         d.ShotType,
			ShootingPlayerID: shooter(p),
			GoalieInNetID:    d.GoalieInNetID,
			Assist1PlayerID:  d.Assist1PlayerID,
			Assist2PlayerID:  d.Assist2PlayerID,
			BlockingPlayerID: d.BlockingPlayerID,
			MissedShotReason: d.Reason,
		})
	}
	return out
}

// shooter is the scorer on goals and the shooter on every other attempt.
func shooter(p games.Play) *int64 {
	if p.Type() == games.EventGoal {
		return p.Details.ScoringPlayerID
	}
	return p.Details.ShootingPlayerID
}
