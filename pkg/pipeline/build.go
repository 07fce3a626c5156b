package pipeline

import (
	"time"

	"github.com/calgrid/calgrid/pkg/grid"
	"github.com/calgrid/calgrid/pkg/layout"
)

// Build answers one layout query without caching or side effects.
//
// Given identical options (including an explicit Now), Build returns
// byte-identical results on every call: there is no hidden randomness and
// no reliance on map iteration order anywhere below it. That determinism
// is what lets callers re-invoke it on every scroll or render tick.
func Build(opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{Mode: opts.Mode}

	switch opts.Mode {
	case ModeMonth:
		cells, err := grid.MonthGrid(opts.Anchor, opts.Now, opts.calendar)
		if err != nil {
			return nil, err
		}
		result.Cells = cells

	case ModeWeek:
		cells, err := grid.WeekGrid(opts.Anchor, opts.Now, opts.calendar)
		if err != nil {
			return nil, err
		}
		result.Cells = cells

	case ModeDay:
		result.Layout = layout.Day(opts.Events, opts.Anchor, opts.calendar, opts.HourHeight)
	}

	result.Stats = Stats{
		EventCount: len(opts.Events),
		CellCount:  len(result.Cells),
		BuildTime:  time.Since(start),
	}
	return result, nil
}
