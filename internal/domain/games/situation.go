package games

// TeamSide marks which perspective a record is computed from.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

// SituationType is the manpower label for a situation code seen from one team.
type SituationType string

const (
	SituationEvenStrength SituationType = "5v5"
	SituationPowerPlay    SituationType = "5v4"
	SituationPenaltyKill  SituationType = "4v5"
	SituationOther        SituationType = "other"
)

// Situation codes are four digits: away goalie, away skaters, home skaters, home goalie.
const (
	CodeEvenStrength  = "1551"
	CodeHomePowerPlay = "1451"
	CodeAwayPowerPlay = "1541"
)

// SituationTypeFor maps a situation code to its label for the given side.
func SituationTypeFor(code string, side TeamSide) SituationType {
	switch code {
	case CodeEvenStrength:
		return SituationEvenStrength
	case CodeHomePowerPlay:
		if side == SideHome {
			return SituationPowerPlay
		}
		return SituationPenaltyKill
	case CodeAwayPowerPlay:
		if side == SideHome {
			return SituationPenaltyKill
		}
		return SituationPowerPlay
	default:
		return SituationOther
	}
}
