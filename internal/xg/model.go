package xg

import (
	"sort"
	"strconv"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// DefaultMinShots is the sample size used by the scheduled xG job.
const DefaultMinShots = 10

// Config tunes model training.
type Config struct {
	// MinShots is the sample size a location must exceed to be kept. Zero keeps
	// every location with at least one attempt; negative values act as zero.
	MinShots int
}

// DefaultConfig returns the production training settings.
func DefaultConfig() Config {
	return Config{MinShots: DefaultMinShots}
}

func (c Config) minShots() int {
	if c.MinShots < 0 {
		return 0
	}
	return c.MinShots
}

// LocationStats is the per-location tally behind a model entry.
type LocationStats struct {
	Key   string
	Shots int
	Goals int
}

// Rate returns goals per shot.
func (s LocationStats) Rate() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Goals) / float64(s.Shots)
}

// Model maps a location key to the empirical scoring probability.
type Model map[string]float64

// Lookup returns the probability for a key when the location was kept.
func (m Model) Lookup(key string) (float64, bool) {
	v, ok := m[key]
	return v, ok
}

// LocationKey renders normalized integer coordinates as "x,y".
func LocationKey(x, y int64) string {
	return strconv.FormatInt(x, 10) + "," + strconv.FormatInt(y, 10)
}

// located is a shot with its normalized coordinates resolved.
type located struct {
	shot  records.Shot
	xNorm *int64
	yNorm *int64
}

func locate(s records.Shot) located {
	return located{
		shot:  s,
		xNorm: Normalize(s.XCoord, s.HomeTeamDefendingSide, s.EventOwnerTeamID, s.HomeTeamID),
		yNorm: Normalize(s.YCoord, s.HomeTeamDefendingSide, s.EventOwnerTeamID, s.HomeTeamID),
	}
}

func (l located) eventType() string {
	if l.shot.EventType == nil {
		return ""
	}
	return *l.shot.EventType
}

// inPopulation reports whether the shot is an unblocked attempt from the
// attacking half with a usable location.
func (l located) inPopulation() bool {
	if !games.IsFenwick(l.eventType()) {
		return false
	}
	return l.xNorm != nil && l.yNorm != nil && *l.xNorm >= 0
}

func (l located) key() string {
	return LocationKey(*l.xNorm, *l.yNorm)
}

// Tally groups the modelled population by location. Keys are sorted.
func Tally(shots []records.Shot) []LocationStats {
	byKey := make(map[string]*LocationStats)
	for _, s := range shots {
		l := locate(s)
		if !l.inPopulation() {
			continue
		}
		k := l.key()
		st, ok := byKey[k]
		if !ok {
			st = &LocationStats{Key: k}
			byKey[k] = st
		}
		st.Shots++
		if l.eventType() == games.EventGoal {
			st.Goals++
		}
	}

	out := make([]LocationStats, 0, len(byKey))
	for _, st := range byKey {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Train builds the model from the full shot history. Locations with no more
// than cfg.MinShots attempts are left out.
func Train(shots []records.Shot, cfg Config) Model {
	threshold := cfg.minShots()
	model := make(Model)
	for _, st := range Tally(shots) {
		if st.Shots > threshold {
			model[st.Key] = st.Rate()
		}
	}
	return model
}

// Score annotates every shot with normalized coordinates and, for modelled
// shots at a kept location, its xG. Input order is preserved.
func Score(shots []records.Shot, model Model) []records.ShotXG {
	out := make([]records.ShotXG, 0, len(shots))
	for _, s := range shots {
		l := locate(s)
		row := records.ShotXG{
			Shot:       s,
			XCoordNorm: l.xNorm,
			YCoordNorm: l.yNorm,
		}
		if l.xNorm != nil && l.yNorm != nil {
			k := l.key()
			row.CoordsCombination = &k
		}
		if l.inPopulation() {
			if v, ok := model.Lookup(l.key()); ok {
				row.XG = &v
			}
		}
		out = append(out, row)
	}
	return out
}
