// Package cache provides the caller-side memoization layer for layout
// results.
//
// The layout engine is stateless and re-derives everything per call, so
// callers that render the same inputs repeatedly (UI ticks, HTTP
// requests) key results on the full input tuple and store them here. The
// engine itself neither requires nor performs caching.
//
// # Backends
//
//   - MemoryCache: in-process map, for single-process callers and tests
//   - FileCache: on-disk entries with TTL, for CLI usage
//   - RedisCache: shared cache for multi-instance serving
//   - NullCache: disables caching entirely
//
// # Keys
//
// Keyer produces deterministic keys from the layout inputs: content hash
// of the event set, anchor date, calendar convention, mode, and scale.
// Two calls with the same inputs always produce the same key.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// GridKeyOpts are the inputs that distinguish one grid request from
// another for caching purposes.
type GridKeyOpts struct {
	Mode      string
	Anchor    time.Time
	Today     time.Time // day granularity; IsToday flags depend on it
	Timezone  string
	WeekStart int
}

// LayoutKeyOpts are the inputs that distinguish one day-layout request
// from another.
type LayoutKeyOpts struct {
	EventsHash string
	Day        time.Time
	Timezone   string
	WeekStart  int
	HourHeight float64
}

// Keyer generates cache keys for layout artifacts.
type Keyer interface {
	// GridKey generates a key for a month or week grid.
	GridKey(opts GridKeyOpts) string

	// LayoutKey generates a key for a day layout.
	LayoutKey(opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard Keyer implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GridKey generates a key for a month or week grid.
func (k *DefaultKeyer) GridKey(opts GridKeyOpts) string {
	return hashKey("grid",
		opts.Mode,
		opts.Anchor.Format("2006-01-02"),
		opts.Today.Format("2006-01-02"),
		opts.Timezone,
		opts.WeekStart,
	)
}

// LayoutKey generates a key for a day layout.
func (k *DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout",
		opts.EventsHash,
		opts.Day.Format("2006-01-02"),
		opts.Timezone,
		opts.WeekStart,
		opts.HourHeight,
	)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
