// control/stats.go
// Author: momentics <momentics@gmail.com>
//
// Change-driven stats collector for ring buffers.
// Observe matches api.NotifyFunc, so a Stats plugs straight into a buffer's
// change callback slot. Counters live in a thread-safe snapshot map so a
// monitoring goroutine can read them while the buffer mutates elsewhere.

package control

import (
	"sync"
	"time"

	"github.com/momentics/ringbuf/api"
)

// Stats aggregates change notifications from one buffer.
type Stats struct {
	mu        sync.RWMutex
	adds      uint64
	removes   uint64
	lastCount int
	highWater int
	updated   time.Time
}

// NewStats creates an empty collector.
func NewStats() *Stats {
	return &Stats{}
}

// Observe records one change notification. Matches api.NotifyFunc.
//
// Removal payloads carry the requested count for bulk removal, so highWater
// and lastCount track insertion payloads only; removal notifications bump
// the removes counter.
func (s *Stats) Observe(count int, kind api.ChangeKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case api.Added:
		s.adds++
		s.lastCount = count
		if count > s.highWater {
			s.highWater = count
		}
	case api.Removed:
		s.removes++
	}
	s.updated = time.Now()
}

// Snapshot returns the latest counters.
func (s *Stats) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"adds":       s.adds,
		"removes":    s.removes,
		"last_count": s.lastCount,
		"high_water": s.highWater,
		"updated":    s.updated,
	}
}
