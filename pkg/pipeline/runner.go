package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calgrid/calgrid/pkg/cache"
	"github.com/calgrid/calgrid/pkg/observability"
)

// Runner executes layout queries with memoization around the stateless
// facade. The engine's contract says callers own caching and must key on
// the full input tuple; Runner is that caller-side layer, shared by the
// CLI and the HTTP API.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	ttl    time.Duration
}

// NewRunner creates a runner. A nil cache disables memoization, a nil
// keyer selects the default keyer, and a nil logger discards output.
func NewRunner(c cache.Cache, k cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if k == nil {
		k = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{cache: c, keyer: k, logger: logger, ttl: DefaultCacheTTL}
}

// SetTTL overrides how long results stay cached. A zero ttl caches
// without expiry.
func (r *Runner) SetTTL(ttl time.Duration) {
	r.ttl = ttl
}

// Execute answers one layout query, consulting the cache first.
//
// The cache key covers everything the output depends on: the event
// snapshot's content hash, the anchor and today dates, the calendar
// convention, the mode, and the vertical scale. A hit is returned as-is
// with CacheInfo.Hit set; a miss falls through to Build and stores the
// result.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	key := r.key(opts)

	if data, ok, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Warn("cache read failed", "err", err)
	} else if ok {
		var cached Result
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, string(opts.Mode))
			cached.CacheInfo.Hit = true
			r.logger.Debug("layout cache hit", "mode", opts.Mode, "anchor", opts.Anchor.Format("2006-01-02"))
			return &cached, nil
		}
		// Corrupt entry: drop it and recompute.
		_ = r.cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, string(opts.Mode))

	observability.Layout().OnBuildStart(ctx, string(opts.Mode), len(opts.Events))
	start := time.Now()
	result, err := Build(opts)
	observability.Layout().OnBuildComplete(ctx, string(opts.Mode), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, string(opts.Mode), len(data))
		}
	}

	r.logger.Debug("layout built",
		"mode", opts.Mode,
		"anchor", opts.Anchor.Format("2006-01-02"),
		"events", len(opts.Events),
		"took", result.Stats.BuildTime.Round(time.Microsecond))
	return result, nil
}

// key derives the cache key for a validated query.
func (r *Runner) key(opts Options) string {
	cal := opts.Calendar()
	tz := cal.Location.String()

	if opts.IsDay() {
		return r.keyer.LayoutKey(cache.LayoutKeyOpts{
			EventsHash: cache.EventsHash(opts.Events),
			Day:        opts.Anchor.In(cal.Location),
			Timezone:   tz,
			WeekStart:  int(cal.WeekStart),
			HourHeight: opts.HourHeight,
		})
	}
	return r.keyer.GridKey(cache.GridKeyOpts{
		Mode:      string(opts.Mode),
		Anchor:    opts.Anchor.In(cal.Location),
		Today:     opts.Now.In(cal.Location),
		Timezone:  tz,
		WeekStart: int(cal.WeekStart),
	})
}
