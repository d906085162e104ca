package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Yesterday returns the calendar day before now, in UTC, as YYYY-MM-DD.
func Yesterday(now time.Time) string {
	return FormatDate(now.UTC().AddDate(0, 0, -1))
}

// ClockSeconds converts a game clock reading ("mm:ss") into seconds.
func ClockSeconds(value string) (int, error) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q", value)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", value, err)
	}
	seconds, err := strconv.Atoi(ss)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", value, err)
	}
	if minutes < 0 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("invalid clock %q", value)
	}
	return minutes*60 + seconds, nil
}
