package games

// LocalizedString is the upstream shape for translatable names ({"default": "..."}).
type LocalizedString struct {
	Default *string `json:"default"`
}

// PeriodDescriptor identifies a period within a game.
type PeriodDescriptor struct {
	Number     *int64  `json:"number"`
	PeriodType *string `json:"periodType"`
}

// Team is a participant as described in the play-by-play payload.
type Team struct {
	ID     *int64  `json:"id"`
	Abbrev *string `json:"abbrev"`
	Score  *int64  `json:"score"`
}

// RosterSpot is one dressed player for either team.
type RosterSpot struct {
	TeamID        *int64          `json:"teamId"`
	PlayerID      *int64          `json:"playerId"`
	FirstName     LocalizedString `json:"firstName"`
	LastName      LocalizedString `json:"lastName"`
	SweaterNumber *int64          `json:"sweaterNumber"`
	PositionCode  *string         `json:"positionCode"`
	Headshot      *string         `json:"headshot"`
}

// Details holds the type-specific fields of a play. Which keys are populated
// depends on the play's typeDescKey; everything else stays nil.
type Details struct {
	XCoord           *int64  `json:"xCoord"`
	YCoord           *int64  `json:"yCoord"`
	ZoneCode         *string `json:"zoneCode"`
	EventOwnerTeamID *int64  `json:"eventOwnerTeamId"`

	// shots and goals
	ShotType         *string `json:"shotType"`
	ScoringPlayerID  *int64  `json:"scoringPlayerId"`
	ShootingPlayerID *int64  `json:"shootingPlayerId"`
	GoalieInNetID    *int64  `json:"goalieInNetId"`
	Assist1PlayerID  *int64  `json:"assist1PlayerId"`
	Assist2PlayerID  *int64  `json:"assist2PlayerId"`
	BlockingPlayerID *int64  `json:"blockingPlayerId"`
	Reason           *string `json:"reason"`

	// faceoffs
	WinningPlayerID *int64 `json:"winningPlayerId"`
	LosingPlayerID  *int64 `json:"losingPlayerId"`

	// hits
	HittingPlayerID *int64 `json:"hittingPlayerId"`
	HitteePlayerID  *int64 `json:"hitteePlayerId"`

	// takeaways and giveaways
	PlayerID *int64 `json:"playerId"`

	// penalties
	TypeCode            *string `json:"typeCode"`
	DescKey             *string `json:"descKey"`
	Duration            *int64  `json:"duration"`
	CommittedByPlayerID *int64  `json:"committedByPlayerId"`
	DrawnByPlayerID     *int64  `json:"drawnByPlayerId"`
	ServedByPlayerID    *int64  `json:"servedByPlayerId"`
}

// Play is a single event within a game.
type Play struct {
	EventID               *int64           `json:"eventId"`
	PeriodDescriptor      PeriodDescriptor `json:"periodDescriptor"`
	TimeInPeriod          *string          `json:"timeInPeriod"`
	TimeRemaining         *string          `json:"timeRemaining"`
	SituationCode         *string          `json:"situationCode"`
	HomeTeamDefendingSide *string          `json:"homeTeamDefendingSide"`
	TypeDescKey           *string          `json:"typeDescKey"`
	SortOrder             *int64           `json:"sortOrder"`
	Details               Details          `json:"details"`
}

// Type returns the play's type tag or an empty string when absent.
func (p Play) Type() string {
	if p.TypeDescKey == nil {
		return ""
	}
	return *p.TypeDescKey
}

// Game is the decoded play-by-play document for one contest.
type Game struct {
	ID               *int64           `json:"id"`
	Season           *int64           `json:"season"`
	GameType         *int64           `json:"gameType"`
	GameDate         *string          `json:"gameDate"`
	StartTimeUTC     *string          `json:"startTimeUTC"`
	Venue            LocalizedString  `json:"venue"`
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	AwayTeam         Team             `json:"awayTeam"`
	HomeTeam         Team             `json:"homeTeam"`
	RosterSpots      []RosterSpot     `json:"rosterSpots"`
	Plays            []Play           `json:"plays"`
}
