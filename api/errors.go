// File: api/errors.go
// Package api defines common error values for ringbuf.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "errors"

var (
	// ErrBufferFull indicates an insertion would exceed buffer capacity.
	ErrBufferFull = errors.New("ring buffer is full")

	// ErrBufferEmpty indicates a single-element removal from an empty buffer.
	ErrBufferEmpty = errors.New("ring buffer is empty")

	// ErrIndexOutOfRange indicates an index, count or deletion size argument
	// outside the valid range for the requested operation.
	ErrIndexOutOfRange = errors.New("index out of range")
)
