package extract

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// gameFields returns the columns attached to every per-event row of game.
func gameFields(game games.Game) records.GameFields {
	return records.GameFields{
		GameID:     game.ID,
		GameDate:   game.GameDate,
		AwayTeamID: game.AwayTeam.ID,
		HomeTeamID: game.HomeTeam.ID,
	}
}

// eventFields returns the columns shared by every event category.
func eventFields(play games.Play) records.EventFields {
	return records.EventFields{
		ID:                    play.EventID,
		Period:                play.PeriodDescriptor.Number,
		PeriodType:            play.PeriodDescriptor.PeriodType,
		TimeInPeriod:          play.TimeInPeriod,
		TimeRemaining:         play.TimeRemaining,
		SituationCode:         play.SituationCode,
		HomeTeamDefendingSide: play.HomeTeamDefendingSide,
		EventType:             play.TypeDescKey,
		SortOrder:             play.SortOrder,
		XCoord:                play.Details.XCoord,
		YCoord:                play.Details.YCoord,
		ZoneCode:              play.Details.ZoneCode,
		EventOwnerTeamID:      play.Details.EventOwnerTeamID,
	}
}

// selectPlays keeps, in order, the plays whose type is one of types.
func selectPlays(plays []games.Play, types ...string) []games.Play {
	out := make([]games.Play, 0)
	for _, p := range plays {
		t := p.Type()
		for _, want := range types {
			if t == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
