// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability helpers for ringbuf containers.
// Stats consumes a buffer's change notifications and aggregates occupancy
// counters for monitoring. See stats.go for implementation details.
package control
