package games

// Game states reported by the schedule endpoint.
const (
	StateFinal  = "OFF"
	StateFuture = "FUT"
)

// ScheduledGame is one entry of a schedule day.
type ScheduledGame struct {
	ID           *int64
	Season       *int64
	GameType     *int64
	GameState    string
	Venue        *string
	Date         string
	StartTimeUTC *string
	HomeTeamID   *int64
	AwayTeamID   *int64
}

// SeasonType decodes the game type, returning SeasonTypeUnknown when absent or invalid.
func (g ScheduledGame) SeasonType() SeasonType {
	if g.GameType == nil {
		return SeasonTypeUnknown
	}
	st, err := ParseSeasonType(int(*g.GameType))
	if err != nil {
		return SeasonTypeUnknown
	}
	return st
}
