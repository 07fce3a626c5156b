package event

import (
	"slices"
	"testing"
	"time"
)

// at builds a same-day timestamp for readable test tables.
func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want bool
	}{
		{
			name: "partial overlap",
			a:    Event{Start: at(9, 0), End: at(10, 0)},
			b:    Event{Start: at(9, 30), End: at(10, 30)},
			want: true,
		},
		{
			name: "containment",
			a:    Event{Start: at(9, 0), End: at(12, 0)},
			b:    Event{Start: at(10, 0), End: at(11, 0)},
			want: true,
		},
		{
			name: "touching does not overlap",
			a:    Event{Start: at(9, 0), End: at(10, 0)},
			b:    Event{Start: at(10, 0), End: at(11, 0)},
			want: false,
		},
		{
			name: "disjoint",
			a:    Event{Start: at(9, 0), End: at(10, 0)},
			b:    Event{Start: at(11, 0), End: at(12, 0)},
			want: false,
		},
		{
			name: "identical range",
			a:    Event{Start: at(9, 0), End: at(10, 0)},
			b:    Event{Start: at(9, 0), End: at(10, 0)},
			want: true,
		},
		{
			name: "zero duration inside a range overlaps it",
			a:    Event{Start: at(9, 30), End: at(9, 30)},
			b:    Event{Start: at(9, 0), End: at(10, 0)},
			want: true,
		},
		{
			name: "zero duration at a boundary does not overlap",
			a:    Event{Start: at(10, 0), End: at(10, 0)},
			b:    Event{Start: at(9, 0), End: at(10, 0)},
			want: false,
		},
		{
			name: "identical zero-duration instants do not overlap",
			a:    Event{Start: at(9, 30), End: at(9, 30)},
			b:    Event{Start: at(9, 30), End: at(9, 30)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortCanonicalOrder(t *testing.T) {
	events := []Event{
		{ID: "d", Start: at(10, 0), End: at(11, 0)},
		{ID: "b", Start: at(9, 0), End: at(10, 0)},
		{ID: "a", Start: at(9, 0), End: at(10, 0)},
		{ID: "c", Start: at(9, 0), End: at(9, 30)},
	}

	Sort(events)

	want := []string{"c", "a", "b", "d"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("events[%d].ID = %q, want %q", i, events[i].ID, id)
		}
	}
}

func TestSortIsDeterministic(t *testing.T) {
	base := []Event{
		{ID: "a", Start: at(9, 0), End: at(10, 0)},
		{ID: "b", Start: at(9, 0), End: at(10, 0)},
		{ID: "c", Start: at(9, 30), End: at(10, 0)},
	}

	// Every input permutation must sort to the same order.
	perms := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}}
	for _, p := range perms {
		in := []Event{base[p[0]], base[p[1]], base[p[2]]}
		got := Sorted(in)
		if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Errorf("Sorted(%v) order = %s,%s,%s, want a,b,c", p, got[0].ID, got[1].ID, got[2].ID)
		}
	}
}

func TestSortedLeavesInputUntouched(t *testing.T) {
	in := []Event{
		{ID: "b", Start: at(10, 0), End: at(11, 0)},
		{ID: "a", Start: at(9, 0), End: at(10, 0)},
	}
	orig := slices.Clone(in)

	Sorted(in)

	for i := range in {
		if in[i].ID != orig[i].ID {
			t.Errorf("input mutated at %d: got %q, want %q", i, in[i].ID, orig[i].ID)
		}
	}
}

func TestColorIndex(t *testing.T) {
	tests := []struct {
		name        string
		groupKey    string
		paletteSize int
		want        int
	}{
		// Fixed FNV-1a expectations: these must never change across
		// releases, or stored screenshots and user expectations break.
		{name: "team", groupKey: "team", paletteSize: 8, want: 4},
		{name: "personal", groupKey: "personal", paletteSize: 8, want: 5},
		{name: "focus", groupKey: "focus", paletteSize: 8, want: 3},
		{name: "smaller palette", groupKey: "team", paletteSize: 4, want: 0},
		{name: "empty key", groupKey: "", paletteSize: 8, want: 0},
		{name: "zero palette", groupKey: "team", paletteSize: 0, want: 0},
		{name: "negative palette", groupKey: "team", paletteSize: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorIndex(tt.groupKey, tt.paletteSize); got != tt.want {
				t.Errorf("ColorIndex(%q, %d) = %d, want %d", tt.groupKey, tt.paletteSize, got, tt.want)
			}
		})
	}
}
