package players

// GameLog is a player's stat line for one game. Skater and goaltender
// fields share the struct; the ones that do not apply stay nil.
type GameLog struct {
	GameID int64 `json:"gameId"`

	Goals   *int64  `json:"goals"`
	Assists *int64  `json:"assists"`
	Points  *int64  `json:"points"`
	PIM     *int64  `json:"pim"`
	TOI     *string `json:"toi"`

	// goaltenders
	GamesStarted *int64   `json:"gamesStarted"`
	ShotsAgainst *int64   `json:"shotsAgainst"`
	GoalsAgainst *int64   `json:"goalsAgainst"`
	SavePctg     *float64 `json:"savePctg"`
	Shutouts     *int64   `json:"shutouts"`

	// skaters
	PlusMinus         *int64 `json:"plusMinus"`
	PowerPlayGoals    *int64 `json:"powerPlayGoals"`
	PowerPlayPoints   *int64 `json:"powerPlayPoints"`
	GameWinningGoals  *int64 `json:"gameWinningGoals"`
	OTGoals           *int64 `json:"otGoals"`
	Shots             *int64 `json:"shots"`
	Shifts            *int64 `json:"shifts"`
	ShorthandedGoals  *int64 `json:"shorthandedGoals"`
	ShorthandedPoints *int64 `json:"shorthandedPoints"`
}

// Find returns the entry for gameID, if present.
func Find(logs []GameLog, gameID int64) (GameLog, bool) {
	for _, l := range logs {
		if l.GameID == gameID {
			return l, true
		}
	}
	return GameLog{}, false
}
