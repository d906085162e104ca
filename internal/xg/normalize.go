// Package xg builds the empirical expected-goals model from shot locations.
package xg

import "github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"

// Normalize rewrites a rink coordinate so positive values point toward the
// goal the owning team attacks. The same flip applies to both axes.
// An absent coordinate stays absent; an absent or unknown side is a no-op.
func Normalize(coord *int64, defendingSide *string, ownerTeamID, homeTeamID *int64) *int64 {
	if coord == nil {
		return nil
	}
	v := *coord
	if shouldFlip(defendingSide, ownerTeamID, homeTeamID) {
		v = -v
	}
	return &v
}

func shouldFlip(defendingSide *string, ownerTeamID, homeTeamID *int64) bool {
	if defendingSide == nil {
		return false
	}
	ownedByHome := sameTeam(ownerTeamID, homeTeamID)
	switch *defendingSide {
	case games.SideLeft:
		return !ownedByHome
	case games.SideRight:
		return ownedByHome
	default:
		return false
	}
}

// sameTeam treats two absent ids as different teams, matching a null-unsafe
// equality on the raw columns.
func sameTeam(a, b *int64) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
