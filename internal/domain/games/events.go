package games

// Play type tags used by the upstream feed.
const (
	EventGoal        = "goal"
	EventShotOnGoal  = "shot-on-goal"
	EventBlockedShot = "blocked-shot"
	EventMissedShot  = "missed-shot"
	EventFaceoff     = "faceoff"
	EventHit         = "hit"
	EventPenalty     = "penalty"
	EventTakeaway    = "takeaway"
	EventGiveaway    = "giveaway"
	EventStoppage    = "stoppage"
)

// Defending side values for homeTeamDefendingSide.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// IsFenwick reports whether the play type is an unblocked shot attempt.
func IsFenwick(eventType string) bool {
	switch eventType {
	case EventGoal, EventShotOnGoal, EventMissedShot:
		return true
	default:
		return false
	}
}
