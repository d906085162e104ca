package extract

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// Summary returns the single summary row of a game.
func Summary(game games.Game) records.Game {
	return records.Game{
		ID:             game.ID,
		Season:         game.Season,
		Type:           game.GameType,
		Date:           game.GameDate,
		StartTimeUTC:   game.StartTimeUTC,
		Venue:          game.Venue.Default,
		Period:         game.PeriodDescriptor.Number,
		PeriodType:     game.PeriodDescriptor.PeriodType,
		AwayTeamID:     game.AwayTeam.ID,
		AwayTeamAbbrev: game.AwayTeam.Abbrev,
		AwayTeamScore:  game.AwayTeam.Score,
		HomeTeamID:     game.HomeTeam.ID,
		HomeTeamAbbrev: game.HomeTeam.Abbrev,
		HomeTeamScore:  game.HomeTeam.Score,
	}
}
