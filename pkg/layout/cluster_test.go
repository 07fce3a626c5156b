package layout

import (
	"testing"
	"time"

	"github.com/calgrid/calgrid/pkg/event"
)

// at returns a time on the fixed test day.
func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

// ev builds a test event spanning [start, end) on the fixed test day.
func ev(id string, startH, startM, endH, endM int) event.Event {
	return event.Event{
		ID:    id,
		Start: at(startH, startM),
		End:   at(endH, endM),
	}
}

func ids(c Cluster) []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClusters(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		want   [][]string
	}{
		{
			name: "empty input",
			want: nil,
		},
		{
			name:   "single event",
			events: []event.Event{ev("a", 9, 0, 10, 0)},
			want:   [][]string{{"a"}},
		},
		{
			name: "transitive chain stays in one cluster",
			// a and c do not overlap, but b bridges them.
			events: []event.Event{
				ev("a", 9, 0, 10, 0),
				ev("b", 9, 30, 10, 30),
				ev("c", 10, 0, 11, 0),
			},
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "touching events split clusters",
			events: []event.Event{
				ev("a", 9, 0, 10, 0),
				ev("b", 10, 0, 11, 0),
			},
			want: [][]string{{"a"}, {"b"}},
		},
		{
			name: "gap splits clusters",
			events: []event.Event{
				ev("a", 9, 0, 10, 0),
				ev("b", 9, 15, 9, 45),
				ev("c", 14, 0, 15, 0),
			},
			want: [][]string{{"a", "b"}, {"c"}},
		},
		{
			name: "input order does not matter",
			events: []event.Event{
				ev("c", 10, 0, 11, 0),
				ev("a", 9, 0, 10, 0),
				ev("b", 9, 30, 10, 30),
			},
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "zero-duration event inside another joins its cluster",
			events: []event.Event{
				ev("a", 9, 0, 10, 0),
				ev("z", 9, 30, 9, 30),
			},
			want: [][]string{{"a", "z"}},
		},
		{
			name: "zero-duration event at a boundary stays alone",
			events: []event.Event{
				ev("a", 9, 0, 10, 0),
				ev("z", 10, 0, 10, 0),
			},
			want: [][]string{{"a"}, {"z"}},
		},
		{
			name: "containment keeps one cluster",
			events: []event.Event{
				ev("outer", 9, 0, 12, 0),
				ev("inner", 10, 0, 10, 30),
			},
			want: [][]string{{"outer", "inner"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clusters(tt.events)
			if len(got) != len(tt.want) {
				t.Fatalf("Clusters() = %d clusters, want %d", len(got), len(tt.want))
			}
			for i, c := range got {
				if !equalIDs(ids(c), tt.want[i]) {
					t.Errorf("cluster %d = %v, want %v", i, ids(c), tt.want[i])
				}
			}
		})
	}
}

func TestClustersIsPartition(t *testing.T) {
	events := []event.Event{
		ev("a", 8, 0, 9, 30),
		ev("b", 9, 0, 10, 0),
		ev("c", 10, 0, 11, 0),
		ev("d", 10, 30, 12, 0),
		ev("e", 13, 0, 13, 0),
		ev("f", 13, 0, 14, 0),
	}

	clusters := Clusters(events)

	seen := map[string]int{}
	total := 0
	for _, c := range clusters {
		if len(c) == 0 {
			t.Fatal("empty cluster returned")
		}
		for _, e := range c {
			seen[e.ID]++
			total++
		}
	}
	if total != len(events) {
		t.Errorf("clusters hold %d events, want %d", total, len(events))
	}
	for _, e := range events {
		if seen[e.ID] != 1 {
			t.Errorf("event %q appears %d times, want 1", e.ID, seen[e.ID])
		}
	}
}

func TestClustersDoesNotMutateInput(t *testing.T) {
	events := []event.Event{
		ev("c", 10, 0, 11, 0),
		ev("a", 9, 0, 10, 0),
	}
	Clusters(events)
	if events[0].ID != "c" || events[1].ID != "a" {
		t.Error("Clusters() reordered the caller's slice")
	}
}
