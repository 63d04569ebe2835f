package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string into a UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the inclusive day count between two dates.
// Same-day start and end count as 1.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
