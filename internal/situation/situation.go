// Package situation derives how long each on-ice manpower situation lasted
// in a game from the ordered play sequence.
package situation

import (
	"fmt"
	"sort"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/games"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/timeutil"
)

const defaultPeriodSeconds = 20 * 60

// Config holds the clock parameters used to place plays on the game timeline.
type Config struct {
	PeriodSeconds int
}

func (c Config) periodSeconds() int {
	if c.PeriodSeconds <= 0 {
		return defaultPeriodSeconds
	}
	return c.PeriodSeconds
}

// CodeTime is the accumulated time, in seconds, spent in one situation code.
type CodeTime struct {
	Code    string
	Seconds float64
}

// Interval is a maximal run of consecutive plays sharing a situation code,
// with its bounds already corrected toward the neighbouring runs.
type Interval struct {
	Code  string
	Start float64
	End   float64
}

// Duration returns the corrected length of the interval.
func (i Interval) Duration() float64 {
	return i.End - i.Start
}

type stamp struct {
	code   string
	second int
}

// Intervals splits plays into situation runs and corrects their bounds so
// that the gap between two runs is split evenly between them. The first
// run's start and the last run's end are left as observed. Plays without a
// period, clock or situation code are ignored.
func Intervals(plays []games.Play, cfg Config) ([]Interval, error) {
	stamps, err := stampPlays(plays, cfg.periodSeconds())
	if err != nil {
		return nil, err
	}
	if len(stamps) == 0 {
		return nil, nil
	}

	var runs []Interval
	for i, s := range stamps {
		sec := float64(s.second)
		if i == 0 || s.code != stamps[i-1].code {
			runs = append(runs, Interval{Code: s.code, Start: sec, End: sec})
			continue
		}
		cur := &runs[len(runs)-1]
		if sec < cur.Start {
			cur.Start = sec
		}
		if sec > cur.End {
			cur.End = sec
		}
	}

	raw := make([]Interval, len(runs))
	copy(raw, runs)
	for i := range runs {
		if i > 0 {
			runs[i].Start -= (raw[i].Start - raw[i-1].End) / 2
		}
		if i < len(runs)-1 {
			runs[i].End += (raw[i+1].Start - raw[i].End) / 2
		}
	}
	return runs, nil
}

// Accumulate sums corrected interval durations per situation code. The
// result is ordered by code.
func Accumulate(plays []games.Play, cfg Config) ([]CodeTime, error) {
	intervals, err := Intervals(plays, cfg)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return nil, nil
	}

	totals := make(map[string]float64)
	for _, iv := range intervals {
		totals[iv.Code] += iv.Duration()
	}
	out := make([]CodeTime, 0, len(totals))
	for code, secs := range totals {
		out = append(out, CodeTime{Code: code, Seconds: secs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func stampPlays(plays []games.Play, periodSeconds int) ([]stamp, error) {
	stamps := make([]stamp, 0, len(plays))
	for _, p := range plays {
		if p.PeriodDescriptor.Number == nil || p.TimeInPeriod == nil || p.SituationCode == nil {
			continue
		}
		clock, err := timeutil.ClockSeconds(*p.TimeInPeriod)
		if err != nil {
			return nil, fmt.Errorf("situation: play %s: %w", eventRef(p), err)
		}
		period := int(*p.PeriodDescriptor.Number)
		stamps = append(stamps, stamp{
			code:   *p.SituationCode,
			second: (period-1)*periodSeconds + clock,
		})
	}
	return stamps, nil
}

func eventRef(p games.Play) string {
	if p.EventID == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *p.EventID)
}
