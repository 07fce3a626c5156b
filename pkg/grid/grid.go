// Package grid builds the fixed-size month and week day grids.
//
// A month grid is always exactly 42 cells (6 rows of 7), padded with
// leading and trailing days from the neighboring months so the caller can
// render a uniform grid without reflow. A week grid is always exactly 7
// cells. Grids are derived purely from pkg/calmath; events never enter
// into grid construction.
package grid

import (
	"time"

	"github.com/calgrid/calgrid/pkg/calmath"
	"github.com/calgrid/calgrid/pkg/errors"
)

// Grid sizes. These are contracts, not defaults: MonthGrid never returns
// anything but 42 cells and WeekGrid never returns anything but 7.
const (
	MonthCells = 42
	WeekCells  = 7
)

// Supported anchor year range. time.Date extrapolates far outside the
// Gregorian calendar without complaint, so the bound is enforced here to
// give callers a clean INVALID_DATE failure instead of a nonsense grid.
const (
	minYear = 1
	maxYear = 9999
)

// DayCell is one square of a month or week grid.
type DayCell struct {
	// Date is midnight of the cell's day in the grid's calendar.
	Date time.Time `json:"date" bson:"date"`

	// InCurrentPeriod is true when the cell belongs to the anchor's
	// period: the anchor month for a month grid, the anchor week for a
	// week grid. Padding cells from neighboring months carry false.
	InCurrentPeriod bool `json:"in_current_period" bson:"in_current_period"`

	// IsToday is true when the cell's day matches the supplied "now"
	// reference.
	IsToday bool `json:"is_today" bson:"is_today"`
}

// MonthGrid builds the 42-cell grid for the month containing anchor.
//
// The grid starts FirstWeekdayOffset days before the first of the month,
// covers every day of the month, and pads forward until it reaches 42
// cells. InCurrentPeriod marks cells inside the anchor month; IsToday
// marks the cell matching now.
//
// The output is all-or-nothing: if the calendar cannot resolve the
// request the error carries ErrCodeInvalidDate or ErrCodeInvalidCalendar
// and no partial grid is returned.
func MonthGrid(anchor, now time.Time, cal calmath.Calendar) ([]DayCell, error) {
	if err := validate(anchor, cal); err != nil {
		return nil, err
	}

	monthStart := cal.StartOfMonth(anchor)
	offset := cal.FirstWeekdayOffset(monthStart)
	first := monthStart.AddDate(0, 0, -offset)

	cells := make([]DayCell, MonthCells)
	for i := range cells {
		day := first.AddDate(0, 0, i)
		cells[i] = DayCell{
			Date:            cal.StartOfDay(day),
			InCurrentPeriod: cal.SameMonth(day, anchor),
			IsToday:         cal.SameDay(day, now),
		}
	}
	return cells, nil
}

// WeekGrid builds the 7-cell grid for the week containing anchor, starting
// from the calendar's first weekday. Every cell of a week grid is in the
// current period.
func WeekGrid(anchor, now time.Time, cal calmath.Calendar) ([]DayCell, error) {
	if err := validate(anchor, cal); err != nil {
		return nil, err
	}

	dayStart := cal.StartOfDay(anchor)
	offset := (int(dayStart.Weekday()) - int(cal.WeekStart) + 7) % 7
	first := dayStart.AddDate(0, 0, -offset)

	cells := make([]DayCell, WeekCells)
	for i := range cells {
		day := first.AddDate(0, 0, i)
		cells[i] = DayCell{
			Date:            cal.StartOfDay(day),
			InCurrentPeriod: true,
			IsToday:         cal.SameDay(day, now),
		}
	}
	return cells, nil
}

// validate rejects unresolvable grid requests up front.
func validate(anchor time.Time, cal calmath.Calendar) error {
	if err := cal.Validate(); err != nil {
		return err
	}
	if anchor.IsZero() {
		return errors.New(errors.ErrCodeInvalidDate, "anchor date is required")
	}
	if y := anchor.Year(); y < minYear || y > maxYear {
		return errors.New(errors.ErrCodeInvalidDate, "anchor year %d outside supported range [%d, %d]", y, minYear, maxYear)
	}
	return nil
}
