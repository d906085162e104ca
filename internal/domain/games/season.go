package games

import (
	"fmt"
	"strconv"
	"strings"
)

// SeasonType classifies a game. The numeric value matches the upstream
// gameType field and the sixth digit of a game id.
type SeasonType int

const (
	SeasonTypeUnknown   SeasonType = 0
	SeasonTypePreseason SeasonType = 1
	SeasonTypeRegular   SeasonType = 2
	SeasonTypePlayoff   SeasonType = 3
	SeasonTypeAllStar   SeasonType = 4
)

var seasonTypeNames = map[SeasonType]string{
	SeasonTypePreseason: "preseason",
	SeasonTypeRegular:   "regular",
	SeasonTypePlayoff:   "playoff",
	SeasonTypeAllStar:   "allstar",
}

// ParseSeasonType decodes the numeric code used by the upstream API.
func ParseSeasonType(code int) (SeasonType, error) {
	st := SeasonType(code)
	if _, ok := seasonTypeNames[st]; !ok {
		return SeasonTypeUnknown, fmt.Errorf("unknown season type %d", code)
	}
	return st, nil
}

// ParseSeasonTypeName decodes a lower-case season type name ("regular", ...).
func ParseSeasonTypeName(name string) (SeasonType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for st, n := range seasonTypeNames {
		if n == name {
			return st, nil
		}
	}
	return SeasonTypeUnknown, fmt.Errorf("unknown season type %q", name)
}

// Code returns the upstream numeric code.
func (s SeasonType) Code() int { return int(s) }

// String returns the lower-case name used in storage paths.
func (s SeasonType) String() string {
	if n, ok := seasonTypeNames[s]; ok {
		return n
	}
	return "unknown"
}

// Downloadable reports whether games of this type are ingested.
func (s SeasonType) Downloadable() bool {
	return s == SeasonTypeRegular || s == SeasonTypePlayoff
}

// GameKey is the identity information encoded in a game id (e.g. 2023020204).
type GameKey struct {
	ID              int64
	SeasonStartYear int
	SeasonType      SeasonType
}

// ParseGameID splits a ten digit game id into season start year and season type.
func ParseGameID(id int64) (GameKey, error) {
	raw := strconv.FormatInt(id, 10)
	if len(raw) != 10 {
		return GameKey{}, fmt.Errorf("invalid game id %d", id)
	}
	year, err := strconv.Atoi(raw[:4])
	if err != nil {
		return GameKey{}, fmt.Errorf("invalid game id %d: %w", id, err)
	}
	st, err := ParseSeasonType(int(raw[5] - '0'))
	if err != nil {
		return GameKey{}, fmt.Errorf("invalid game id %d: %w", id, err)
	}
	return GameKey{ID: id, SeasonStartYear: year, SeasonType: st}, nil
}

// ParseGameIDString is ParseGameID for string ids such as storage key stems.
func ParseGameIDString(raw string) (GameKey, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return GameKey{}, fmt.Errorf("invalid game id %q: %w", raw, err)
	}
	return ParseGameID(id)
}

// Season returns the 8-digit season code, e.g. "20232024".
func (k GameKey) Season() string {
	return SeasonCode(k.SeasonStartYear)
}

// SeasonCode builds the 8-digit season code for a season starting in startYear.
func SeasonCode(startYear int) string {
	return fmt.Sprintf("%d%d", startYear, startYear+1)
}
