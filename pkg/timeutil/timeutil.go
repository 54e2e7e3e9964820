// Package timeutil provides calendar-day helpers bound to an explicit
// location. Enrollment dates are bucketed by the day they fall on in the
// configured timezone, so every helper takes the location as an argument.
// No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate is the ISO date format (2006-01-02).
const FormatDate = "2006-01-02"

// LoadLocation resolves a timezone name. Empty and "Local" resolve to the
// process-local zone, "UTC" to UTC; anything else goes through the tz database.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("timeutil: unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// StartOfDay returns midnight of the day t falls on in loc.
// A nil loc means time.Local.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	loc = orLocal(loc)
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// FormatDateStr formats t as YYYY-MM-DD in loc.
func FormatDateStr(t time.Time, loc *time.Location) string {
	return t.In(orLocal(loc)).Format(FormatDate)
}
