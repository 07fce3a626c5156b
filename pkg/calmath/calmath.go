// Package calmath provides the pure date arithmetic the grid and layout
// packages are built on.
//
// All functions are methods on Calendar, the calendar/timezone strategy
// object that callers supply explicitly. Nothing in this package reads
// process-global state: the same inputs always produce the same outputs,
// which is what lets the engine be re-run on every render tick without
// visual jitter.
package calmath

import (
	"time"

	"github.com/calgrid/calgrid/pkg/errors"
)

// Calendar bundles the two conventions date arithmetic depends on: the
// timezone days are truncated in, and which weekday opens the week.
//
// The zero value is usable and means UTC with weeks starting on Sunday.
type Calendar struct {
	// Location is the timezone used for day boundaries. Nil means UTC.
	Location *time.Location

	// WeekStart is the first weekday of the week. time.Weekday's zero is
	// Sunday, so the zero value starts weeks on Sunday; use Default for
	// the Monday convention.
	WeekStart time.Weekday
}

// Default returns the default calendar: UTC, weeks starting on Monday.
func Default() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Monday}
}

// loc returns the calendar's location, defaulting to UTC.
func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Validate checks that the calendar configuration is resolvable.
func (c Calendar) Validate() error {
	if c.WeekStart < time.Sunday || c.WeekStart > time.Saturday {
		return errors.New(errors.ErrCodeInvalidCalendar, "week start out of range: %d", int(c.WeekStart))
	}
	return nil
}

// StartOfDay truncates t to midnight in the calendar's timezone.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.loc())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc())
}

// StartOfMonth truncates t to midnight on the first of its month.
func (c Calendar) StartOfMonth(t time.Time) time.Time {
	t = t.In(c.loc())
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.loc())
}

// DaysInMonth returns the number of days in t's month (28–31).
func (c Calendar) DaysInMonth(t time.Time) int {
	t = t.In(c.loc())
	// Day 0 of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, c.loc()).Day()
}

// FirstWeekdayOffset returns the number of leading cells needed so that
// monthStart lands in its correct weekday column, given the calendar's
// week-start convention. The result is always in [0,6].
func (c Calendar) FirstWeekdayOffset(monthStart time.Time) int {
	monthStart = monthStart.In(c.loc())
	return (int(monthStart.Weekday()) - int(c.WeekStart) + 7) % 7
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	a, b = a.In(c.loc()), b.In(c.loc())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func (c Calendar) SameMonth(a, b time.Time) bool {
	a, b = a.In(c.loc()), b.In(c.loc())
	return a.Year() == b.Year() && a.Month() == b.Month()
}
