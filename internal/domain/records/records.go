// Package records defines the flat rows written as columnar tables. Every
// nullable column is a pointer; nil is stored as a parquet null.
package records

// Category names a table family. The value doubles as the storage folder.
type Category string

const (
	CategoryGames             Category = "games"
	CategoryShots             Category = "shots"
	CategoryFaceoffs          Category = "faceoffs"
	CategoryHits              Category = "hits"
	CategoryPossessionChanges Category = "possession-changes"
	CategoryPenalties         Category = "penalties"
	CategoryPlayers           Category = "players"
	CategorySituationTime     Category = "situation-time"
)

// Categories lists the per-game categories in write order.
var Categories = []Category{
	CategoryGames,
	CategoryShots,
	CategoryFaceoffs,
	CategoryHits,
	CategoryPossessionChanges,
	CategoryPenalties,
	CategoryPlayers,
	CategorySituationTime,
}

// GameFields are attached to every per-event row.
type GameFields struct {
	GameID     *int64  `parquet:"game_id,optional"`
	GameDate   *string `parquet:"game_date,optional"`
	AwayTeamID *int64  `parquet:"away_team_id,optional"`
	HomeTeamID *int64  `parquet:"home_team_id,optional"`
}

// EventFields are shared by all event categories.
type EventFields struct {
	ID                    *int64  `parquet:"id,optional"`
	Period                *int64  `parquet:"period,optional"`
	PeriodType            *string `parquet:"period_type,optional"`
	TimeInPeriod          *string `parquet:"time_in_period,optional"`
	TimeRemaining         *string `parquet:"time_remaining,optional"`
	SituationCode         *string `parquet:"situation_code,optional"`
	HomeTeamDefendingSide *string `parquet:"home_team_defending_side,optional"`
	EventType             *string `parquet:"event_type,optional"`
	SortOrder             *int64  `parquet:"sort_order,optional"`
	XCoord                *int64  `parquet:"x_coord,optional"`
	YCoord                *int64  `parquet:"y_coord,optional"`
	ZoneCode              *string `parquet:"zone_code,optional"`
	EventOwnerTeamID      *int64  `parquet:"event_owner_team_id,optional"`
}

// Game is the one-row summary of a contest.
type Game struct {
	ID             *int64  `parquet:"id,optional"`
	Season         *int64  `parquet:"season,optional"`
	Type           *int64  `parquet:"type,optional"`
	Date           *string `parquet:"date,optional"`
	StartTimeUTC   *string `parquet:"start_time_utc,optional"`
	Venue          *string `parquet:"venue,optional"`
	Period         *int64  `parquet:"period,optional"`
	PeriodType     *string `parquet:"period_type,optional"`
	AwayTeamID     *int64  `parquet:"away_team_id,optional"`
	AwayTeamAbbrev *string `parquet:"away_team_abbrev,optional"`
	AwayTeamScore  *int64  `parquet:"away_team_score,optional"`
	HomeTeamID     *int64  `parquet:"home_team_id,optional"`
	HomeTeamAbbrev *string `parquet:"home_team_abbrev,optional"`
	HomeTeamScore  *int64  `parquet:"home_team_score,optional"`
}

// Shot covers goals, shots on goal, blocked and missed shots.
type Shot struct {
	GameFields
	EventFields
	ShotType         *string `parquet:"shot_type,optional"`
	ShootingPlayerID *int64  `parquet:"shooting_player_id,optional"`
	GoalieInNetID    *int64  `parquet:"goalie_in_net_id,optional"`
	Assist1PlayerID  *int64  `parquet:"assist_1_player_id,optional"`
	Assist2PlayerID  *int64  `parquet:"assist_2_player_id,optional"`
	BlockingPlayerID *int64  `parquet:"blocking_player_id,optional"`
	MissedShotReason *string `parquet:"missed_shot_reason,optional"`
}

type Faceoff struct {
	GameFields
	EventFields
	WinningPlayerID *int64 `parquet:"winning_player_id,optional"`
	LosingPlayerID  *int64 `parquet:"losing_player_id,optional"`
}

type Hit struct {
	GameFields
	EventFields
	HittingPlayerID *int64 `parquet:"hitting_player_id,optional"`
	HitteePlayerID  *int64 `parquet:"hittee_player_id,optional"`
}

// PossessionChange is a takeaway or a giveaway.
type PossessionChange struct {
	GameFields
	EventFields
	PlayerID *int64 `parquet:"player_id,optional"`
}

type Penalty struct {
	GameFields
	EventFields
	PenaltyCode         *string `parquet:"penalty_code,optional"`
	PenaltyType         *string `parquet:"penalty_type,optional"`
	Duration            *int64  `parquet:"duration,optional"`
	CommittedByPlayerID *int64  `parquet:"committed_by_player_id,optional"`
	DrawnByPlayerID     *int64  `parquet:"drawn_by_player_id,optional"`
	ServedByPlayerID    *int64  `parquet:"served_by_player_id,optional"`
}

// Player is a roster spot joined with the player's stat line for the game.
type Player struct {
	GameFields
	PlayerID      *int64  `parquet:"player_id,optional"`
	TeamID        *int64  `parquet:"team_id,optional"`
	Season        *int64  `parquet:"season,optional"`
	FirstName     *string `parquet:"first_name,optional"`
	LastName      *string `parquet:"last_name,optional"`
	SweaterNumber *int64  `parquet:"sweater_number,optional"`
	PositionCode  *string `parquet:"position_code,optional"`
	Headshot      *string `parquet:"headshot,optional"`

	Goals   *int64  `parquet:"goals,optional"`
	Assists *int64  `parquet:"assists,optional"`
	Points  *int64  `parquet:"points,optional"`
	PIM     *int64  `parquet:"pim,optional"`
	TOI     *string `parquet:"toi,optional"`

	GamesStarted *int64   `parquet:"games_started,optional"`
	ShotsAgainst *int64   `parquet:"shots_against,optional"`
	GoalsAgainst *int64   `parquet:"goals_against,optional"`
	SavePctg     *float64 `parquet:"save_pctg,optional"`
	Shutouts     *int64   `parquet:"shutouts,optional"`

	PlusMinus         *int64 `parquet:"plus_minus,optional"`
	PowerPlayGoals    *int64 `parquet:"power_play_goals,optional"`
	PowerPlayPoints   *int64 `parquet:"power_play_points,optional"`
	GameWinningGoals  *int64 `parquet:"game_winning_goals,optional"`
	OTGoals           *int64 `parquet:"ot_goals,optional"`
	Shots             *int64 `parquet:"shots,optional"`
	Shifts            *int64 `parquet:"shifts,optional"`
	ShorthandedGoals  *int64 `parquet:"shorthanded_goals,optional"`
	ShorthandedPoints *int64 `parquet:"shorthanded_points,optional"`
}

// SituationTime is the total time, in seconds, one team spent in a situation code.
type SituationTime struct {
	GameFields
	SituationTeamID *int64  `parquet:"situation_team_id,optional"`
	SituationCode   string  `parquet:"situation_code"`
	SituationType   string  `parquet:"situation_type"`
	SituationTime   float64 `parquet:"situation_time"`
}

// ShotXG is a shot with attack-direction normalized coordinates and its xG.
type ShotXG struct {
	Shot
	XCoordNorm        *int64   `parquet:"x_coord_norm,optional"`
	YCoordNorm        *int64   `parquet:"y_coord_norm,optional"`
	CoordsCombination *string  `parquet:"coords_combination,optional"`
	XG                *float64 `parquet:"xg,optional"`
}

// ScheduledGame is an upcoming game for the schedule table.
type ScheduledGame struct {
	ID           *int64  `parquet:"id,optional"`
	Season       *int64  `parquet:"season,optional"`
	Venue        *string `parquet:"venue,optional"`
	Day          *string `parquet:"day,optional"`
	StartTimeUTC *string `parquet:"start_time_utc,optional"`
	HomeTeamID   *int64  `parquet:"home_team_id,optional"`
	AwayTeamID   *int64  `parquet:"away_team_id,optional"`
}

// Team is one row of the teams seed table.
type Team struct {
	TeamFullName     *string `parquet:"team_full_name,optional"`
	TeamAbbrevName   *string `parquet:"team_abbrev_name,optional"`
	TeamCommonName   *string `parquet:"team_common_name,optional"`
	Conference       *string `parquet:"conference,optional"`
	ConferenceAbbrev *string `parquet:"conference_abbrev,optional"`
	Division         *string `parquet:"division,optional"`
	DivisionAbbrev   *string `parquet:"division_abbrev,optional"`
	TeamLogoURL      *string `parquet:"team_logo_url,optional"`
}
