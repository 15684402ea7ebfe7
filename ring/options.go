// File: ring/options.go
// Package ring defines functional options for buffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/ringbuf/api"

// Option customizes ring buffer initialization.
type Option[T any] func(*Ring[T])

// WithOnChange installs the change callback at construction time.
func WithOnChange[T any](fn api.NotifyFunc) Option[T] {
	return func(r *Ring[T]) {
		r.onChange = fn
	}
}

// WithVacateHook installs a hook invoked with each inclusive physical index
// range as its elements leave logical scope through Remove or RemoveN.
// Owned buffers install their own hook; the option is for external
// collaborators over plain rings.
func WithVacateHook[T any](fn func(start, end int)) Option[T] {
	return func(r *Ring[T]) {
		r.onVacate = fn
	}
}
