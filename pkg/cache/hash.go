package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/calgrid/calgrid/pkg/event"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to keep collisions out of the picture.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// EventsHash computes a content hash of an event set, independent of the
// input order. The slice is brought into canonical order before hashing,
// so two snapshots with the same events always hash identically.
func EventsHash(events []event.Event) string {
	sorted := event.Sorted(events)
	data, _ := json.Marshal(sorted)
	return Hash(data)
}
