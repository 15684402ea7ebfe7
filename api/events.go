// File: api/events.go
// Package api defines change notification types for ringbuf.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// ChangeKind classifies a mutation reported through the change callback.
type ChangeKind int

const (
	// Added is reported after single or bulk insertion.
	Added ChangeKind = iota
	// Removed is reported after removal, deletion and clearing.
	Removed
)

// String returns a human-readable kind name.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// NotifyFunc receives (count, kind) after each successful mutating operation.
// For insertions count is the resulting occupancy; for bulk removal it is the
// requested element count. A buffer holds at most one NotifyFunc at a time and
// never invokes it for failed operations.
type NotifyFunc func(count int, kind ChangeKind)
