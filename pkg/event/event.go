// Package event defines the timestamped event the whole engine consumes.
//
// An event is an opaque ID plus a half-open time range [Start, End) and
// an optional group key for color assignment. The engine never interprets
// anything else about an event; titles, locations, and attendees belong
// to the caller.
//
// The canonical order — start, then end, then ID — is the total order
// every deterministic guarantee downstream rests on: two snapshots with
// the same events always sort identically, regardless of input order.
package event

import (
	"slices"
	"strings"
	"time"
)

// Event is one scheduled item.
type Event struct {
	// ID uniquely identifies the event within a snapshot.
	ID string `json:"id" bson:"_id"`

	// Start is the inclusive beginning of the event.
	Start time.Time `json:"start" bson:"start"`

	// End is the exclusive end of the event.
	End time.Time `json:"end" bson:"end"`

	// GroupKey buckets the event for color assignment. Empty is a valid
	// bucket of its own.
	GroupKey string `json:"group_key,omitempty" bson:"group_key,omitempty"`
}

// Duration returns the event's length. It is negative when End precedes
// Start; the layout engine tolerates that and renders a minimum-height
// block.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps reports whether e and o overlap in time.
//
// The test is strict: ranges that merely touch (one ends exactly when
// the other starts) do not overlap, so back-to-back meetings share a
// column.
func (e Event) Overlaps(o Event) bool {
	return e.Start.Before(o.End) && e.End.After(o.Start)
}

// Compare orders two events canonically: by start, then end, then ID.
// The ID tie-break makes the order total for any snapshot with unique
// IDs.
func Compare(a, b Event) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	if c := a.End.Compare(b.End); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// Sort sorts events in place into canonical order.
func Sort(events []Event) {
	slices.SortFunc(events, Compare)
}

// Sorted returns a canonically ordered copy, leaving the input untouched.
func Sorted(events []Event) []Event {
	out := slices.Clone(events)
	Sort(out)
	return out
}
