// Package api
// Author: momentics <momentics@gmail.com>
//
// FIFO container contract for fixed-capacity ring buffers.
//
// A Buffer behaves as an unbounded-looking FIFO over a flat fixed-size
// storage region: no element is ever shifted, only two cursors move.
// Buffers are single-threaded; callers provide external synchronization
// when sharing one across goroutines.

package api

// Buffer is the fixed-capacity FIFO container contract.
type Buffer[T any] interface {
	// Add appends one item; returns ErrBufferFull when no free slot remains.
	Add(item T) error

	// AddAll appends all items as one batch; returns ErrBufferFull when the
	// batch does not fit in the remaining free space. Empty input is a no-op.
	AddAll(items []T) error

	// Remove dequeues the oldest item; returns ErrBufferEmpty when empty.
	Remove() (T, error)

	// RemoveN dequeues up to n oldest items in insertion order. Requesting
	// more than present is allowed and capped; an empty buffer yields an
	// empty result. Returns ErrIndexOutOfRange when n exceeds capacity.
	RemoveN(n int) ([]T, error)

	// Peek returns the item at logical position index without removing it.
	Peek(index int) (T, error)

	// PeekN returns up to n items starting at logical position index,
	// without removing them.
	PeekN(index, n int) ([]T, error)

	// Delete drops the n oldest items without returning them. n >= Len()
	// acts exactly as Clear.
	Delete(n int) error

	// Clear drops every item and resets the cursors.
	Clear()

	// Len returns current logical occupancy.
	Len() int

	// Cap returns fixed buffer capacity.
	Cap() int

	// SetOnChange installs the single change callback slot, replacing any
	// previous callback. A nil fn disables notification.
	SetOnChange(fn NotifyFunc)
}
