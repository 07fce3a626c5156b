package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/calgrid/calgrid/pkg/event"
)

func gridOpts() GridKeyOpts {
	return GridKeyOpts{
		Mode:      "month",
		Anchor:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Today:     time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
		Timezone:  "UTC",
		WeekStart: 1,
	}
}

func TestGridKeyDeterministic(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.GridKey(gridOpts())
	b := k.GridKey(gridOpts())
	if a != b {
		t.Errorf("GridKey() not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "grid:") {
		t.Errorf("GridKey() = %q, want grid: prefix", a)
	}
}

func TestGridKeySensitivity(t *testing.T) {
	k := NewDefaultKeyer()
	base := k.GridKey(gridOpts())

	tests := []struct {
		name   string
		mutate func(*GridKeyOpts)
	}{
		{"mode", func(o *GridKeyOpts) { o.Mode = "week" }},
		{"anchor", func(o *GridKeyOpts) { o.Anchor = o.Anchor.AddDate(0, 1, 0) }},
		{"today", func(o *GridKeyOpts) { o.Today = o.Today.AddDate(0, 0, 1) }},
		{"timezone", func(o *GridKeyOpts) { o.Timezone = "Europe/Madrid" }},
		{"week start", func(o *GridKeyOpts) { o.WeekStart = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := gridOpts()
			tt.mutate(&opts)
			if k.GridKey(opts) == base {
				t.Errorf("changing %s did not change the key", tt.name)
			}
		})
	}
}

func TestGridKeyIgnoresTimeOfDay(t *testing.T) {
	k := NewDefaultKeyer()

	opts := gridOpts()
	opts.Anchor = opts.Anchor.Add(14 * time.Hour)
	opts.Today = opts.Today.Add(9 * time.Hour)

	if k.GridKey(opts) != k.GridKey(gridOpts()) {
		t.Error("GridKey() varies with time of day; keys should be day-granular")
	}
}

func TestLayoutKeySensitivity(t *testing.T) {
	k := NewDefaultKeyer()
	base := LayoutKeyOpts{
		EventsHash: "abc",
		Day:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Timezone:   "UTC",
		WeekStart:  1,
		HourHeight: 50,
	}

	changed := base
	changed.HourHeight = 60
	if k.LayoutKey(base) == k.LayoutKey(changed) {
		t.Error("changing hour height did not change the layout key")
	}

	changed = base
	changed.EventsHash = "def"
	if k.LayoutKey(base) == k.LayoutKey(changed) {
		t.Error("changing events hash did not change the layout key")
	}
}

func TestEventsHashOrderIndependent(t *testing.T) {
	a := event.Event{ID: "a", Start: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), End: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	b := event.Event{ID: "b", Start: time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), End: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	if EventsHash([]event.Event{a, b}) != EventsHash([]event.Event{b, a}) {
		t.Error("EventsHash() depends on input order")
	}

	c := b
	c.End = c.End.Add(time.Minute)
	if EventsHash([]event.Event{a, b}) == EventsHash([]event.Event{a, c}) {
		t.Error("EventsHash() did not change when an event changed")
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if _, ok, err := c.Get(ctx, "absent"); ok || err != nil {
		t.Errorf("Get(absent) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(data) != "v" {
		t.Errorf("Get(k) = %q ok=%v err=%v, want v", data, ok, err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() hit after Delete()")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(absent) error = %v, want nil", err)
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() hit after TTL expiry")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, ok, err := c.Get(ctx, "absent"); ok || err != nil {
		t.Errorf("Get(absent) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(data) != "payload" {
		t.Errorf("Get(k) = %q ok=%v err=%v, want payload", data, ok, err)
	}

	count, size, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if count != 1 || size == 0 {
		t.Errorf("Stats() = %d entries, %d bytes; want 1 entry with data", count, size)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() hit after Delete()")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(absent) error = %v, want nil", err)
	}
}

func TestFileCacheTTL(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() hit after TTL expiry")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	count, _, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Stats() after Clear() = %d entries, want 0", count)
	}
}

func TestFileCacheSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c1, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c1.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	c2, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	data, ok, err := c2.Get(ctx, "k")
	if err != nil || !ok || string(data) != "v" {
		t.Errorf("Get() after reopen = %q ok=%v err=%v, want v", data, ok, err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache returned a hit")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	team := NewScopedKeyer(base, "team:ops:")
	personal := NewScopedKeyer(base, "personal:")

	opts := gridOpts()
	teamKey := team.GridKey(opts)
	if !strings.HasPrefix(teamKey, "team:ops:grid:") {
		t.Errorf("GridKey() = %q, want team:ops:grid: prefix", teamKey)
	}
	if teamKey == personal.GridKey(opts) {
		t.Error("different scopes produced the same key")
	}
	if strings.TrimPrefix(teamKey, "team:ops:") != base.GridKey(opts) {
		t.Error("scoped key does not wrap the inner keyer's key")
	}
}
