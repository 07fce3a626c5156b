// Package layout resolves a day's events into non-overlapping visual
// columns and pixel geometry.
//
// The pipeline inside this package has three stages:
//
//  1. Clusters groups events into maximal chains of transitive temporal
//     overlap. Events in different clusters never contend for columns.
//  2. AssignColumns runs greedy interval coloring within one cluster,
//     which is optimal (uses exactly the clique number of columns) when
//     events arrive in non-decreasing start order — the order Clusters
//     guarantees.
//  3. Day composes both with the time→pixel conversion, producing one
//     PixelLayout per event of the requested day.
//
// Everything here is a pure function of its arguments. Identical inputs
// produce identical outputs, including ordering, so callers may rerun the
// layout on every render tick without jitter.
package layout

import (
	"github.com/calgrid/calgrid/pkg/event"
)

// Cluster is an ordered set of events that are pairwise reachable through
// chained temporal overlap. Members are in canonical (start, end, id)
// order. A cluster is never empty.
type Cluster []event.Event

// Clusters partitions events into overlap clusters.
//
// The input is sorted into the canonical order first (the caller's slice
// is not modified), then walked once: an event joins the most recently
// opened cluster if it overlaps any member of it, and opens a new cluster
// otherwise. Because events are processed in start order, an event that
// does not overlap the latest cluster cannot overlap an earlier one.
//
// Every input event lands in exactly one cluster; no event is dropped or
// duplicated.
func Clusters(events []event.Event) []Cluster {
	if len(events) == 0 {
		return nil
	}

	sorted := event.Sorted(events)

	clusters := []Cluster{{sorted[0]}}
	for _, e := range sorted[1:] {
		last := clusters[len(clusters)-1]
		if overlapsAny(last, e) {
			clusters[len(clusters)-1] = append(last, e)
			continue
		}
		clusters = append(clusters, Cluster{e})
	}
	return clusters
}

// overlapsAny reports whether e overlaps any member of c.
func overlapsAny(c Cluster, e event.Event) bool {
	for _, m := range c {
		if m.Overlaps(e) {
			return true
		}
	}
	return false
}
