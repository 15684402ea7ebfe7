// File: spsc/spsc.go
// Package spsc implements a lock-free single-producer single-consumer ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a bounded circular buffer with atomic head/tail cursors, padded
// with cache-line geometry from x/sys/cpu to prevent false sharing between
// the producer and consumer sides. Capacity must be a power of two so the
// cursors wrap by masking. Implements api.Ring for cross-package consistency.
//
// Unlike ring.Ring, this type is safe for exactly one producer goroutine
// and one consumer goroutine; it carries no notification or ownership
// machinery.

package spsc

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a lock-free SPSC ring buffer (power-of-two capacity).
type Ring[T any] struct {
	data []T
	mask uint64
	_    cpu.CacheLinePad
	head atomic.Uint64
	_    cpu.CacheLinePad
	tail atomic.Uint64
	_    cpu.CacheLinePad
}

// New allocates a ring of power-of-two size.
func New[T any](size uint64) *Ring[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("spsc: size must be power of two")
	}
	return &Ring[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// Enqueue adds item; returns false if full. Producer side only.
func (r *Ring[T]) Enqueue(item T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail-head >= uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = item
	r.tail.Store(tail + 1)
	return true
}

// Dequeue removes and returns item; ok false if empty. Consumer side only.
func (r *Ring[T]) Dequeue() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head >= tail {
		var zero T
		return zero, false
	}
	item := r.data[head&r.mask]
	r.head.Store(head + 1)
	return item, true
}

// Len returns number of items currently in buffer.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}
