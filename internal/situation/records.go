package situation

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// Records expands per-code totals into one row per team per code, labelled
// from that team's point of view. Home rows come first.
func Records(base records.GameFields, homeTeamID, awayTeamID *int64, totals []CodeTime) []records.SituationTime {
	if len(totals) == 0 {
		return nil
	}
	sides := []struct {
		teamID *int64
		side   games.TeamSide
	}{
		{homeTeamID, games.SideHome},
		{awayTeamID, games.SideAway},
	}

	out := make([]records.SituationTime, 0, 2*len(totals))
	for _, s := range sides {
		for _, ct := range totals {
			out = append(out, records.SituationTime{
				GameFields:      base,
				SituationTeamID: s.teamID,
				SituationCode:   ct.Code,
				SituationType:   string(games.SituationTypeFor(ct.Code, s.side)),
				SituationTime:   ct.Seconds,
			})
		}
	}
	return out
}
