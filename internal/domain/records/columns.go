package records

// ShotColumns is the flat read layout of a shots table. parquet-go does not
// restore nulls into embedded struct fields, so tables are read back through
// this type and converted with Shot.
type ShotColumns struct {
	GameID     *int64  `parquet:"game_id,optional"`
	GameDate   *string `parquet:"game_date,optional"`
	AwayTeamID *int64  `parquet:"away_team_id,optional"`
	HomeTeamID *int64  `parquet:"home_team_id,optional"`

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

	ShotType         *string `parquet:"shot_type,optional"`
	ShootingPlayerID *int64  `parquet:"shooting_player_id,optional"`
	GoalieInNetID    *int64  `parquet:"goalie_in_net_id,optional"`
	Assist1PlayerID  *int64  `parquet:"assist_1_player_id,optional"`
	Assist2PlayerID  *int64  `parquet:"assist_2_player_id,optional"`
	BlockingPlayerID *int64  `parquet:"blocking_player_id,optional"`
	MissedShotReason *string `parquet:"missed_shot_reason,optional"`
}

// Shot rebuilds the nested row.
func (c ShotColumns) Shot() Shot {
	return Shot{
		GameFields: GameFields{
			GameID:     c.GameID,
			GameDate:   c.GameDate,
			AwayTeamID: c.AwayTeamID,
			HomeTeamID: c.HomeTeamID,
		},
		EventFields: EventFields{
			ID:                    c.ID,
			Period:                c.Period,
			PeriodType:            c.PeriodType,
			TimeInPeriod:          c.TimeInPeriod,
			TimeRemaining:         c.TimeRemaining,
			SituationCode:         c.SituationCode,
			HomeTeamDefendingSide: c.HomeTeamDefendingSide,
			EventType:             c.EventType,
			SortOrder:             c.SortOrder,
			XCoord:                c.XCoord,
			YCoord:                c.YCoord,
			ZoneCode:              c.ZoneCode,
			EventOwnerTeamID:      c.EventOwnerTeamID,
		},
		ShotType:         c.ShotType,
		ShootingPlayerID: c.ShootingPlayerID,
		GoalieInNetID:    c.GoalieInNetID,
		Assist1PlayerID:  c.Assist1PlayerID,
		Assist2PlayerID:  c.Assist2PlayerID,
		BlockingPlayerID: c.BlockingPlayerID,
		MissedShotReason: c.MissedShotReason,
	}
}

// ShotXGColumns is the flat read layout of the scored shots table.
type ShotXGColumns struct {
	GameID     *int64  `parquet:"game_id,optional"`
	GameDate   *string `parquet:"game_date,optional"`
	AwayTeamID *int64  `parquet:"away_team_id,optional"`
	HomeTeamID *int64  `parquet:"home_team_id,optional"`

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

	ShotType         *string `parquet:"shot_type,optional"`
	ShootingPlayerID *int64  `parquet:"shooting_player_id,optional"`
	GoalieInNetID    *int64  `parquet:"goalie_in_net_id,optional"`
	Assist1PlayerID  *int64  `parquet:"assist_1_player_id,optional"`
	Assist2PlayerID  *int64  `parquet:"assist_2_player_id,optional"`
	BlockingPlayerID *int64  `parquet:"blocking_player_id,optional"`
	MissedShotReason *string `parquet:"missed_shot_reason,optional"`

	XCoordNorm        *int64   `parquet:"x_coord_norm,optional"`
	YCoordNorm        *int64   `parquet:"y_coord_norm,optional"`
	CoordsCombination *string  `parquet:"coords_combination,optional"`
	XG                *float64 `parquet:"xg,optional"`
}

// ShotXG rebuilds the nested row.
func (c ShotXGColumns) ShotXG() ShotXG {
	shot := ShotColumns{
		GameID:                c.GameID,
		GameDate:              c.GameDate,
		AwayTeamID:            c.AwayTeamID,
		HomeTeamID:            c.HomeTeamID,
		ID:                    c.ID,
		Period:                c.Period,
		PeriodType:            c.PeriodType,
		TimeInPeriod:          c.TimeInPeriod,
		TimeRemaining:         c.TimeRemaining,
		SituationCode:         c.SituationCode,
		HomeTeamDefendingSide: c.HomeTeamDefendingSide,
		EventType:             c.EventType,
		SortOrder:             c.SortOrder,
		XCoord:                c.XCoord,
		YCoord:                c.YCoord,
		ZoneCode:              c.ZoneCode,
		EventOwnerTeamID:      c.EventOwnerTeamID,
		ShotType:              c.ShotType,
		ShootingPlayerID:      c.ShootingPlayerID,
		GoalieInNetID:         c.GoalieInNetID,
		Assist1PlayerID:       c.Assist1PlayerID,
		Assist2PlayerID:       c.Assist2PlayerID,
		BlockingPlayerID:      c.BlockingPlayerID,
		MissedShotReason:      c.MissedShotReason,
	}
	return ShotXG{
		Shot:              shot.Shot(),
		XCoordNorm:        c.XCoordNorm,
		YCoordNorm:        c.YCoordNorm,
		CoordsCombination: c.CoordsCombination,
		XG:                c.XG,
	}
}
