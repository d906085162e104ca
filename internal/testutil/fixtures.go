package testutil

import (
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
)

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Sample team ids used by SampleGame.
const (
	HomeTeamID int64 = 10
	AwayTeamID int64 = 20
	GameID     int64 = 2023020204
)

// PlayAt builds a play with the fields the situation clock needs.
func PlayAt(eventID int64, period int64, clock, code, typeDescKey string) games.Play {
	return games.Play{
		EventID:          Int64(eventID),
		PeriodDescriptor: games.PeriodDescriptor{Number: Int64(period), PeriodType: String("REG")},
		TimeInPeriod:     String(clock),
		SituationCode:    String(code),
		TypeDescKey:      String(typeDescKey),
		SortOrder:        Int64(eventID),
	}
}

// ShotPlay builds a shot-type play owned by ownerTeamID at (x, y).
func ShotPlay(eventID int64, typeDescKey string, ownerTeamID int64, side string, x, y int64) games.Play {
	p := PlayAt(eventID, 1, "05:00", "1551", typeDescKey)
	p.HomeTeamDefendingSide = String(side)
	p.Details = games.Details{
		XCoord:           Int64(x),
		YCoord:           Int64(y),
		ZoneCode:         String("O"),
		EventOwnerTeamID: Int64(ownerTeamID),
	}
	return p
}

// SampleGame returns a small regular season game with the given plays.
func SampleGame(plays ...games.Play) games.Game {
	return games.Game{
		ID:           Int64(GameID),
		Season:       Int64(20232024),
		GameType:     Int64(2),
		GameDate:     String("2023-11-15"),
		StartTimeUTC: String("2023-11-16T00:00:00Z"),
		Venue:        games.LocalizedString{Default: String("Scotiabank Arena")},
		PeriodDescriptor: games.PeriodDescriptor{
			Number:     Int64(3),
			PeriodType: String("REG"),
		},
		AwayTeam: games.Team{ID: Int64(AwayTeamID), Abbrev: String("AWY"), Score: Int64(2)},
		HomeTeam: games.Team{ID: Int64(HomeTeamID), Abbrev: String("HOM"), Score: Int64(3)},
		RosterSpots: []games.RosterSpot{
			{
				TeamID:        Int64(HomeTeamID),
				PlayerID:      Int64(8478483),
				FirstName:     games.LocalizedString{Default: String("Mitch")},
				LastName:      games.LocalizedString{Default: String("Marner")},
				SweaterNumber: Int64(16),
				PositionCode:  String("R"),
			},
			{
				TeamID:        Int64(AwayTeamID),
				PlayerID:      Int64(8476945),
				FirstName:     games.LocalizedString{Default: String("Connor")},
				LastName:      games.LocalizedString{Default: String("Hellebuyck")},
				SweaterNumber: Int64(37),
				PositionCode:  String("G"),
			},
		},
		Plays: plays,
	}
}

// SampleGameJSON is a raw play-by-play document covering every extracted category.
const SampleGameJSON = `{
  "id": 2023020204,
  "season": 20232024,
  "gameType": 2,
  "gameDate": "2023-11-15",
  "startTimeUTC": "2023-11-16T00:00:00Z",
  "venue": {"default": "Scotiabank Arena"},
  "periodDescriptor": {"number": 3, "periodType": "REG"},
  "awayTeam": {"id": 20, "abbrev": "AWY", "score": 2},
  "homeTeam": {"id": 10, "abbrev": "HOM", "score": 3},
  "rosterSpots": [
    {"teamId": 10, "playerId": 8478483, "firstName": {"default": "Mitch"}, "lastName": {"default": "Marner"}, "sweaterNumber": 16, "positionCode": "R", "headshot": "https://assets/8478483.png"},
    {"teamId": 20, "playerId": 8476945, "firstName": {"default": "Connor"}, "lastName": {"default": "Hellebuyck"}, "sweaterNumber": 37, "positionCode": "G"}
  ],
  "plays": [
    {"eventId": 1, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "00:00", "timeRemaining": "20:00", "situationCode": "1551", "homeTeamDefendingSide": "left", "typeDescKey": "faceoff", "sortOrder": 10,
     "details": {"xCoord": 0, "yCoord": 0, "zoneCode": "N", "eventOwnerTeamId": 10, "winningPlayerId": 8478483, "losingPlayerId": 8476945}},
    {"eventId": 2, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "01:10", "timeRemaining": "18:50", "situationCode": "1551", "homeTeamDefendingSide": "left", "typeDescKey": "hit", "sortOrder": 20,
     "details": {"xCoord": -80, "yCoord": 35, "zoneCode": "D", "eventOwnerTeamId": 20, "hittingPlayerId": 8476945, "hitteePlayerId": 8478483}},
    {"eventId": 3, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "02:00", "timeRemaining": "18:00", "situationCode": "1551", "homeTeamDefendingSide": "left", "typeDescKey": "penalty", "sortOrder": 30,
     "details": {"xCoord": 20, "yCoord": -10, "zoneCode": "O", "eventOwnerTeamId": 20, "typeCode": "MIN", "descKey": "tripping", "duration": 2, "committedByPlayerId": 8476945, "drawnByPlayerId": 8478483}},
    {"eventId": 4, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "02:30", "timeRemaining": "17:30", "situationCode": "1451", "homeTeamDefendingSide": "left", "typeDescKey": "shot-on-goal", "sortOrder": 40,
     "details": {"xCoord": 70, "yCoord": 5, "zoneCode": "O", "eventOwnerTeamId": 10, "shotType": "wrist", "shootingPlayerId": 8478483, "goalieInNetId": 8476945}},
    {"eventId": 5, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "03:30", "timeRemaining": "16:30", "situationCode": "1451", "homeTeamDefendingSide": "left", "typeDescKey": "goal", "sortOrder": 50,
     "details": {"xCoord": 80, "yCoord": -3, "zoneCode": "O", "eventOwnerTeamId": 10, "shotType": "snap", "scoringPlayerId": 8478483, "shootingPlayerId": 1, "assist1PlayerId": 8479318, "goalieInNetId": 8476945}},
    {"eventId": 6, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "04:10", "timeRemaining": "15:50", "situationCode": "1551", "homeTeamDefendingSide": "left", "typeDescKey": "takeaway", "sortOrder": 60,
     "details": {"xCoord": -30, "yCoord": 12, "zoneCode": "N", "eventOwnerTeamId": 20, "playerId": 8476945}},
    {"eventId": 7, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "05:00", "timeRemaining": "15:00", "situationCode": "1551", "homeTeamDefendingSide": "left", "typeDescKey": "blocked-shot", "sortOrder": 70,
     "details": {"xCoord": -60, "yCoord": 8, "zoneCode": "D", "eventOwnerTeamId": 20, "shootingPlayerId": 8476945, "blockingPlayerId": 8478483}},
    {"eventId": 8, "periodDescriptor": {"number": 1, "periodType": "REG"}, "timeInPeriod": "06:00", "timeRemaining": "14:00", "situationCode": "1551", "homeTeamDefendingSide": "left", "typeDescKey": "stoppage", "sortOrder": 80,
     "details": {"reason": "icing"}}
  ]
}`

// EmptyGameJSON is a finished game document with no plays.
const EmptyGameJSON = `{
  "id": 2023020205,
  "season": 20232024,
  "gameType": 2,
  "gameDate": "2023-11-15",
  "awayTeam": {"id": 20, "abbrev": "AWY", "score": 0},
  "homeTeam": {"id": 10, "abbrev": "HOM", "score": 0},
  "rosterSpots": [],
  "plays": []
}`
