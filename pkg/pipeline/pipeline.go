// Package pipeline is the single entry point over the calendar layout
// engine.
//
// This package composes pkg/grid and pkg/layout behind one query surface
// so the CLI, the HTTP API, and the TUI all derive grids and day layouts
// the same way instead of each re-implementing the composition.
//
// # Architecture
//
// There are two layers, deliberately separated:
//
//   - Build is the stateless facade: a pure function of Options that
//     re-derives everything on every call. It holds no state and performs
//     no caching, so it is safe to call from any goroutine, including on
//     every render tick.
//   - Runner wraps Build with the caller-side concerns the facade
//     refuses to own: memoization through pkg/cache, observability hooks,
//     timing stats, and logging.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Mode:   pipeline.ModeDay,
//	    Anchor: day,
//	    Events: events,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	placements := result.Layout
//
// Callers that want no caching at all can call Build directly.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calgrid/calgrid/pkg/calmath"
	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/event"
	"github.com/calgrid/calgrid/pkg/grid"
	"github.com/calgrid/calgrid/pkg/layout"
)

// =============================================================================
// Modes and Defaults
// =============================================================================

// Mode selects which query the pipeline answers.
type Mode string

// View modes.
const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
	ModeDay   Mode = "day"
)

// ValidModes is the set of supported view modes.
var ValidModes = map[Mode]bool{
	ModeMonth: true,
	ModeWeek:  true,
	ModeDay:   true,
}

const (
	// DefaultHourHeight is the default vertical scale: user units per hour
	// in a day layout.
	DefaultHourHeight = 50.0

	// DefaultCacheTTL is how long Runner results stay cached.
	DefaultCacheTTL = 15 * time.Minute
)

// ValidateMode checks that a mode is valid.
func ValidateMode(mode Mode) error {
	if !ValidModes[mode] {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: month, week, day)", string(mode))
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one layout query.
// The struct supports JSON serialization for API requests.
type Options struct {
	// Mode selects month grid, week grid, or day layout.
	Mode Mode `json:"mode"`

	// Anchor is the reference date the grid or layout is computed around.
	Anchor time.Time `json:"anchor"`

	// Now is the reference instant for IsToday flags. Zero means the wall
	// clock at validation time; pass it explicitly for reproducible output.
	Now time.Time `json:"now,omitempty"`

	// Timezone is an IANA zone name. Empty means UTC.
	Timezone string `json:"timezone,omitempty"`

	// WeekStart is the first weekday of the week by name ("monday",
	// "sunday", ...). Empty means monday.
	WeekStart string `json:"week_start,omitempty"`

	// HourHeight is the vertical scale for day layouts. Zero selects
	// DefaultHourHeight.
	HourHeight float64 `json:"hour_height,omitempty"`

	// Events is the full event snapshot for day layouts. Month and week
	// grids ignore it.
	Events []event.Event `json:"events,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// calendar is resolved from Timezone and WeekStart during validation.
	calendar calmath.Calendar

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if o.Anchor.IsZero() {
		return errors.New(errors.ErrCodeInvalidInput, "anchor date is required")
	}
	if err := errors.ValidateHourHeight(o.HourHeight); err != nil {
		return err
	}

	loc, err := errors.ParseTimezone(o.Timezone)
	if err != nil {
		return err
	}
	weekStart, err := errors.ParseWeekStart(o.WeekStart)
	if err != nil {
		return err
	}
	o.calendar = calmath.Calendar{Location: loc, WeekStart: weekStart}

	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.HourHeight == 0 {
		o.HourHeight = DefaultHourHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Calendar returns the calendar resolved during validation. It is only
// meaningful after ValidateAndSetDefaults has succeeded.
func (o *Options) Calendar() calmath.Calendar {
	return o.calendar
}

// IsDay returns true if this is a day-layout query.
func (o *Options) IsDay() bool {
	return o.Mode == ModeDay
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of one layout query.
type Result struct {
	// Mode echoes the query mode.
	Mode Mode `json:"mode" bson:"mode"`

	// Cells is the day grid for month and week modes: always 42 cells for
	// month, 7 for week, nil for day mode.
	Cells []grid.DayCell `json:"cells,omitempty" bson:"cells,omitempty"`

	// Layout is the per-event geometry for day mode; nil otherwise.
	Layout []layout.PixelLayout `json:"layout,omitempty" bson:"layout,omitempty"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats" bson:"stats"`

	// CacheInfo tracks whether the result came from cache.
	CacheInfo CacheInfo `json:"cache_info" bson:"cache_info"`
}

// Stats contains execution statistics for one query.
type Stats struct {
	EventCount int           `json:"event_count" bson:"event_count"`
	CellCount  int           `json:"cell_count" bson:"cell_count"`
	BuildTime  time.Duration `json:"build_time" bson:"build_time"`
}

// CacheInfo tracks cache participation for one query.
type CacheInfo struct {
	Hit bool `json:"hit" bson:"hit"` // Whether the result came from cache
}
