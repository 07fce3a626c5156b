package layout

import (
	"github.com/calgrid/calgrid/pkg/event"
)

// ColumnPlacement assigns one event to a display column within its
// cluster. Column is 0-based; ColumnCount is the total number of columns
// the cluster needed, identical for every member.
type ColumnPlacement struct {
	EventID     string `json:"event_id" bson:"event_id"`
	Column      int    `json:"column" bson:"column"`
	ColumnCount int    `json:"column_count" bson:"column_count"`
}

// AssignColumns places each event of a cluster into the lowest-indexed
// column where it overlaps no one, appending a new column when none fits.
//
// Processed in the cluster's start-time order this greedy strategy is
// optimal for interval graphs: the final column count equals the maximum
// number of events simultaneously active at any instant in the cluster.
//
// Placements are returned in cluster member order. An empty cluster
// yields no placements.
func AssignColumns(c Cluster) []ColumnPlacement {
	if len(c) == 0 {
		return nil
	}

	placements := make([]ColumnPlacement, len(c))
	var columns [][]event.Event

	for i, e := range c {
		col := -1
		for j, members := range columns {
			if !anyOverlap(members, e) {
				col = j
				break
			}
		}
		if col < 0 {
			col = len(columns)
			columns = append(columns, nil)
		}
		columns[col] = append(columns[col], e)
		placements[i] = ColumnPlacement{EventID: e.ID, Column: col}
	}

	for i := range placements {
		placements[i].ColumnCount = len(columns)
	}
	return placements
}

// anyOverlap reports whether e overlaps any event in members.
func anyOverlap(members []event.Event, e event.Event) bool {
	for _, m := range members {
		if m.Overlaps(e) {
			return true
		}
	}
	return false
}
