package errors

import (
	"math"
	"strings"
	"time"
)

// weekStartNames maps the accepted week-start spellings to weekdays.
// Only full lowercase English day names are accepted; the CLI and config
// layers normalize case before calling ParseWeekStart.
var weekStartNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekStart converts a week-start name ("monday", "sunday", ...) to a
// time.Weekday. An empty name defaults to Monday.
func ParseWeekStart(name string) (time.Weekday, error) {
	if name == "" {
		return time.Monday, nil
	}
	if wd, ok := weekStartNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return wd, nil
	}
	return 0, New(ErrCodeInvalidCalendar, "invalid week start: %q (must be a weekday name)", name)
}

// ParseTimezone resolves an IANA timezone name ("Europe/Madrid", "UTC").
// An empty name resolves to UTC.
func ParseTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, Wrap(ErrCodeInvalidCalendar, err, "invalid timezone: %q", name)
	}
	return loc, nil
}

// ValidateHourHeight checks that an hour-height scale constant is usable.
// Zero is allowed at option level (it selects the default); negative and
// non-finite values are not.
func ValidateHourHeight(h float64) error {
	if h < 0 {
		return New(ErrCodeInvalidInput, "hour height cannot be negative: %v", h)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return New(ErrCodeInvalidInput, "hour height must be a finite number")
	}
	return nil
}
