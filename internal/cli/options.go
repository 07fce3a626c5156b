package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/cache"
	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/event"
	"github.com/calgrid/calgrid/pkg/pipeline"
	"github.com/calgrid/calgrid/pkg/source/ics"
	"github.com/calgrid/calgrid/pkg/source/jsonfile"
)

// Output formats for the grid and day commands.
const (
	formatText = "text"
	formatJSON = "json"
	formatSVG  = "svg"
)

// parseDate parses a YYYY-MM-DD flag value as midnight in loc, defaulting
// to now when empty. Parsing in the resolved timezone keeps the value on
// the named calendar day; parsed as UTC it would land on the previous
// local day in negative-offset zones.
func parseDate(raw string, loc *time.Location, now time.Time) (time.Time, error) {
	if raw == "" {
		return now, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid date %q (want YYYY-MM-DD)", raw)
	}
	return t, nil
}

// gridFlags are the flags shared by every layout-producing command.
// Empty string flags defer to the config file.
type gridFlags struct {
	anchor    string
	timezone  string
	weekStart string
	format    string
}

// options assembles pipeline options from flags layered over config.
// The timezone is resolved first so the anchor date lands on the named
// day in that zone.
func (f *gridFlags) options(cfg *config.Config, mode pipeline.Mode, logger *log.Logger) (pipeline.Options, error) {
	tz := cfg.Timezone
	if f.timezone != "" {
		tz = f.timezone
	}
	loc, err := errors.ParseTimezone(tz)
	if err != nil {
		return pipeline.Options{}, err
	}

	anchor, err := parseDate(f.anchor, loc, time.Now())
	if err != nil {
		return pipeline.Options{}, err
	}

	weekStart := cfg.WeekStart
	if f.weekStart != "" {
		weekStart = f.weekStart
	}

	return pipeline.Options{
		Mode:       mode,
		Anchor:     anchor,
		Timezone:   tz,
		WeekStart:  weekStart,
		HourHeight: cfg.HourHeight,
		Logger:     logger,
	}, nil
}

// newRunner builds the pipeline runner with the cache backend the config
// selects. The returned cleanup closes the backend.
func newRunner(ctx context.Context, cfg *config.Config, logger *log.Logger) (*pipeline.Runner, func(), error) {
	backend, err := newCacheBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	runner := pipeline.NewRunner(backend, cache.NewDefaultKeyer(), logger)
	if cfg.Cache.TTLMinutes > 0 {
		runner.SetTTL(time.Duration(cfg.Cache.TTLMinutes) * time.Minute)
	}
	return runner, func() { _ = backend.Close() }, nil
}

// newCacheBackend constructs the configured cache backend.
func newCacheBackend(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "none":
		return cache.NewNullCache(), nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "file":
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := config.DefaultCacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid cache backend: %q", cfg.Cache.Backend)
	}
}

// loadEvents reads an event file, dispatching on extension: .ics goes
// through the iCalendar adapter, everything else is read as JSON.
func loadEvents(ctx context.Context, path string) ([]event.Event, error) {
	if strings.EqualFold(filepath.Ext(path), ".ics") {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return ics.New(name, path).Load(ctx)
	}
	return jsonfile.ImportEvents(path)
}
