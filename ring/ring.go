// File: ring/ring.go
// Package ring implements the fixed-capacity FIFO ring buffer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring keeps a head cursor (oldest element), a tail cursor (next free write
// slot) and a full flag that disambiguates head == tail. Occupancy is always
// derived from this triple, never stored, so the cursors are the single
// source of truth. Bulk operations move elements in at most two contiguous
// spans across the wrap boundary.

package ring

import (
	"github.com/momentics/ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.Buffer[any] = (*Ring[any])(nil)

// Ring is a fixed-capacity circular FIFO buffer.
// Not safe for concurrent use without external synchronization.
type Ring[T any] struct {
	data []T
	head int
	tail int
	full bool // resolves head == tail: true means at capacity, false means empty

	onChange api.NotifyFunc
	onVacate func(start, end int) // inclusive physical range leaving logical scope
}

// New allocates a ring buffer with the given capacity.
// Panics if capacity < 2: with fewer than two slots the cursor pair cannot
// express a circular FIFO.
func New[T any](capacity int, opts ...Option[T]) *Ring[T] {
	if capacity < 2 {
		panic("ring: capacity must be at least 2")
	}
	r := &Ring[T]{
		data: make([]T, capacity),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns current logical occupancy, derived from the cursor pair and
// the full flag.
func (r *Ring[T]) Len() int {
	if r.tail != r.head {
		if r.tail > r.head {
			return r.tail - r.head
		}
		return len(r.data) - r.head + r.tail
	}
	if r.full {
		return len(r.data)
	}
	return 0
}

// Cap returns fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// SetOnChange installs the single change callback slot, replacing any
// previous callback.
func (r *Ring[T]) SetOnChange(fn api.NotifyFunc) {
	r.onChange = fn
}

// Add appends one item at the tail cursor.
// Returns api.ErrBufferFull when no free slot remains; state is unchanged.
func (r *Ring[T]) Add(item T) error {
	if r.Len() == len(r.data) {
		return api.ErrBufferFull
	}
	r.data[r.tail] = item
	r.tail = r.advance(r.tail, 1)
	if r.tail == r.head {
		r.full = true
	}
	r.notify(r.Len(), api.Added)
	return nil
}

// AddAll appends all items as one batch, split into at most two contiguous
// copies across the wrap boundary. Empty input is a no-op. Returns
// api.ErrBufferFull when the batch exceeds the free space; state is unchanged.
func (r *Ring[T]) AddAll(items []T) error {
	if len(items) == 0 {
		return nil
	}
	if len(items) > len(r.data)-r.Len() {
		return api.ErrBufferFull
	}
	n := copy(r.data[r.tail:], items)
	if n < len(items) {
		copy(r.data, items[n:])
	}
	r.tail = r.advance(r.tail, len(items))
	if r.tail == r.head {
		r.full = true
	}
	r.notify(r.Len(), api.Added)
	return nil
}

// Remove dequeues the oldest item.
// Returns api.ErrBufferEmpty when the buffer holds nothing; state is
// unchanged. The notification payload is the occupancy before removal.
func (r *Ring[T]) Remove() (T, error) {
	var zero T
	before := r.Len()
	if before == 0 {
		return zero, api.ErrBufferEmpty
	}
	item := r.data[r.head]
	r.vacate(r.head, r.head)
	r.head = r.advance(r.head, 1)
	if r.head == r.tail {
		r.full = false
	}
	r.notify(before, api.Removed)
	return item, nil
}

// RemoveN dequeues up to n oldest items in insertion order. Requesting more
// than present is allowed and capped; an empty buffer yields an empty result
// without error or notification. Returns api.ErrIndexOutOfRange when n is
// negative or exceeds capacity.
//
// The notification payload is the requested n, not the number actually
// removed. Callers tracking occupancy through notifications must read Len
// instead of accumulating payloads.
func (r *Ring[T]) RemoveN(n int) ([]T, error) {
	if n < 0 || n > len(r.data) {
		return nil, api.ErrIndexOutOfRange
	}
	count := r.Len()
	if count == 0 {
		return nil, nil
	}
	k := min(n, count)
	out := make([]T, k)
	span := min(k, len(r.data)-r.head)
	copy(out, r.data[r.head:r.head+span])
	if span > 0 {
		r.vacate(r.head, r.head+span-1)
	}
	if span < k {
		copy(out[span:], r.data[:k-span])
		r.vacate(0, k-span-1)
	}
	r.head = r.advance(r.head, k)
	if k == count {
		r.full = false
	}
	r.notify(n, api.Removed)
	return out, nil
}

// Delete drops the n oldest items without returning them. n >= Len() acts
// exactly as Clear. Otherwise the head cursor advances past the items; the
// storage slots keep their stale values but become logically unreachable.
// Returns api.ErrIndexOutOfRange when n is negative or exceeds capacity.
func (r *Ring[T]) Delete(n int) error {
	if n < 0 || n > len(r.data) {
		return api.ErrIndexOutOfRange
	}
	if n >= r.Len() {
		r.Clear()
		return nil
	}
	if n == 0 {
		return nil
	}
	r.head = r.advance(r.head, n)
	r.notify(n, api.Removed)
	return nil
}

// Clear drops every item by resetting both cursors and the full flag.
// Notifies (0, Removed) unconditionally, even on an already-empty buffer.
func (r *Ring[T]) Clear() {
	r.head = 0
	r.tail = 0
	r.full = false
	r.notify(0, api.Removed)
}

// Peek returns the item at logical position index without removing it.
// No state mutation, no notification. Returns api.ErrIndexOutOfRange when
// index does not address a present element.
func (r *Ring[T]) Peek(index int) (T, error) {
	var zero T
	if index < 0 || index >= r.Len() {
		return zero, api.ErrIndexOutOfRange
	}
	return r.data[r.advance(r.head, index)], nil
}

// PeekN returns up to n items starting at logical position index, copied in
// at most two contiguous spans. An empty buffer yields an empty result.
// Returns api.ErrIndexOutOfRange when n exceeds capacity or index addresses
// no present element.
func (r *Ring[T]) PeekN(index, n int) ([]T, error) {
	if index < 0 || n < 0 || n > len(r.data) {
		return nil, api.ErrIndexOutOfRange
	}
	count := r.Len()
	if count == 0 {
		return nil, nil
	}
	if index >= count {
		return nil, api.ErrIndexOutOfRange
	}
	k := min(n, count-index)
	out := make([]T, k)
	start := r.advance(r.head, index)
	span := copy(out, r.data[start:min(start+k, len(r.data))])
	if span < k {
		copy(out[span:], r.data[:k-span])
	}
	return out, nil
}

// advance steps a cursor forward by the given increment with wraparound.
// Holds for any increment up to capacity, the largest step any operation
// takes.
func (r *Ring[T]) advance(cursor, by int) int {
	cursor += by
	if cursor >= len(r.data) {
		cursor -= len(r.data)
	}
	return cursor
}

// vacate reports an inclusive physical index range leaving logical scope.
func (r *Ring[T]) vacate(start, end int) {
	if r.onVacate != nil {
		r.onVacate(start, end)
	}
}

// notify invokes the change callback if one is installed.
func (r *Ring[T]) notify(count int, kind api.ChangeKind) {
	if r.onChange != nil {
		r.onChange(count, kind)
	}
}
