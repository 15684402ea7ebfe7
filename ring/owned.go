// File: ring/owned.go
// Package ring implements the owning ring buffer variant.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owned wraps Ring with element ownership: whenever elements leave logical
// scope (Remove, RemoveN, Delete, Clear, Close) it runs a release function
// over them when ownership is enabled, and always zeroes the vacated slots
// so the buffer drops its references for the garbage collector.

package ring

import "github.com/momentics/ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.Buffer[any] = (*Owned[any])(nil)

// Owned is a ring buffer that can own its elements, releasing them as they
// leave the buffer. Typical element types hold external resources: open
// files, pooled buffers, connections.
type Owned[T any] struct {
	*Ring[T]
	release func(T)
	owns    bool
	closed  bool
}

// NewOwned allocates an owning ring buffer. release is invoked once per
// element leaving logical scope while owns is enabled; a nil release with
// owns=true only zeroes slots. Panics if capacity < 2.
//
// NewOwned installs its own vacate hook; combining it with WithVacateHook
// is unsupported.
func NewOwned[T any](capacity int, owns bool, release func(T), opts ...Option[T]) *Owned[T] {
	o := &Owned[T]{
		Ring:    New[T](capacity, opts...),
		release: release,
		owns:    owns,
	}
	o.Ring.onVacate = o.releaseRange
	return o
}

// Owns reports whether the buffer currently owns its elements.
func (o *Owned[T]) Owns() bool {
	return o.owns
}

// SetOwns enables or disables element ownership. Affects only elements
// leaving the buffer after the call.
func (o *Owned[T]) SetOwns(owns bool) {
	o.owns = owns
}

// Delete drops the n oldest items, releasing them first when owning.
// The bound on n is validated before anything is released: an invalid
// request must leave every element intact. Returns api.ErrIndexOutOfRange
// when n is negative or exceeds capacity.
func (o *Owned[T]) Delete(n int) error {
	if n < 0 || n > o.Cap() {
		return api.ErrIndexOutOfRange
	}
	if n >= o.Len() {
		o.Clear()
		return nil
	}
	if n > 0 {
		o.releaseSpans(n)
	}
	return o.Ring.Delete(n)
}

// Clear releases every logically present element when owning, then resets
// the cursors through the core.
func (o *Owned[T]) Clear() {
	o.releaseSpans(o.Len())
	o.Ring.Clear()
}

// Close releases any elements still present and retires the buffer.
// Idempotent; no notification fires.
func (o *Owned[T]) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	o.releaseSpans(o.Len())
	o.head = 0
	o.tail = 0
	o.full = false
	return nil
}

// releaseSpans releases the n oldest elements, derived as up to two physical
// spans: head to the end of storage, then the start of storage for the
// remainder. n == Cap with head == tail covers the whole storage.
func (o *Owned[T]) releaseSpans(n int) {
	if n <= 0 {
		return
	}
	span := min(n, len(o.data)-o.head)
	o.releaseRange(o.head, o.head+span-1)
	if span < n {
		o.releaseRange(0, n-span-1)
	}
}

// releaseRange is the installed vacate hook: release each element in the
// inclusive physical range when owning, and always zero the slot.
func (o *Owned[T]) releaseRange(start, end int) {
	var zero T
	for i := start; i <= end; i++ {
		if o.owns && o.release != nil {
			o.release(o.data[i])
		}
		o.data[i] = zero
	}
}
