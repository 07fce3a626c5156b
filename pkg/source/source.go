// Package source defines the narrow contract between the layout engine
// and whatever owns the events.
//
// The engine never queries storage: a Source resolves a full event
// snapshot, and the caller hands that snapshot to every layout call.
// Adapters live in subpackages:
//
//   - jsonfile: events from a local JSON file
//   - ics: events from an iCalendar file or subscription URL
//   - mongo: events from a MongoDB collection
package source

import (
	"context"

	"github.com/calgrid/calgrid/pkg/event"
)

// Source resolves a complete event snapshot.
type Source interface {
	// Load fetches all events from the backing store. The returned slice
	// is owned by the caller.
	Load(ctx context.Context) ([]event.Event, error)

	// Name identifies the source in logs and CLI output.
	Name() string
}
