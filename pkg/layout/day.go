package layout

import (
	"time"

	"github.com/calgrid/calgrid/pkg/calmath"
	"github.com/calgrid/calgrid/pkg/event"
)

// MinutesPerDay is the vertical extent of a day schedule in minutes.
const MinutesPerDay = 1440

// PixelLayout is the renderable geometry for one event in a day schedule.
//
// Column geometry is relative: the horizontal lane is Column out of
// ColumnCount equal-width lanes. Vertical geometry is absolute in user
// units: YOffset and Height are derived from the event's minutes and the
// caller-supplied hour height.
type PixelLayout struct {
	EventID     string  `json:"event_id" bson:"event_id"`
	Column      int     `json:"column" bson:"column"`
	ColumnCount int     `json:"column_count" bson:"column_count"`
	YOffset     float64 `json:"y_offset" bson:"y_offset"`
	Height      float64 `json:"height" bson:"height"`
}

// Day lays out the events of a single day.
//
// Events are filtered to those whose start falls within
// [StartOfDay(day), StartOfDay(day)+24h); an event spanning midnight is
// attributed to its start day only. The survivors are clustered, each
// cluster is column-assigned, and every event gets pixel geometry:
//
//	yOffset = minutesFromMidnight / 60 * hourHeight
//	height  = max(durationMinutes, 1) / 60 * hourHeight
//
// Minutes from midnight are clamped to [0, 1440). The one-minute duration
// floor keeps degenerate events (zero duration, end before start) from
// producing invisible or negative-height blocks; it is a rendering
// accommodation, not a correction of the event data.
//
// The result is ordered by cluster, then by cluster member order, which
// makes the output deterministic for identical inputs. An empty or fully
// filtered input yields an empty, non-nil slice.
func Day(events []event.Event, day time.Time, cal calmath.Calendar, hourHeight float64) []PixelLayout {
	dayStart := cal.StartOfDay(day)
	dayEnd := dayStart.Add(24 * time.Hour)

	var inDay []event.Event
	for _, e := range events {
		if !e.Start.Before(dayStart) && e.Start.Before(dayEnd) {
			inDay = append(inDay, e)
		}
	}

	out := make([]PixelLayout, 0, len(inDay))
	for _, cluster := range Clusters(inDay) {
		placements := AssignColumns(cluster)
		for i, e := range cluster {
			mins := e.Start.Sub(dayStart).Minutes()
			if mins < 0 {
				mins = 0
			}
			if mins >= MinutesPerDay {
				mins = MinutesPerDay - 1
			}

			dur := e.End.Sub(e.Start).Minutes()
			if dur < 1 {
				dur = 1
			}

			out = append(out, PixelLayout{
				EventID:     e.ID,
				Column:      placements[i].Column,
				ColumnCount: placements[i].ColumnCount,
				YOffset:     mins / 60 * hourHeight,
				Height:      dur / 60 * hourHeight,
			})
		}
	}
	return out
}
