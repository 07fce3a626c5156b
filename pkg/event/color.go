package event

import "hash/fnv"

// ColorIndex maps a group key to a stable palette slot in
// [0, paletteSize). The same key always lands in the same slot, across
// runs and processes, so a group keeps its color no matter which events
// are on screen.
//
// An empty key or a non-positive palette size yields slot 0.
func ColorIndex(groupKey string, paletteSize int) int {
	if groupKey == "" || paletteSize <= 0 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(groupKey))
	return int(h.Sum32() % uint32(paletteSize))
}
