// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// owned_test.go — White-box tests for the owning ring buffer variant.
// Lives in package ring to verify vacated storage slots are zeroed.
package ring

import (
	"errors"
	"testing"

	"github.com/momentics/ringbuf/api"
)

// tracked counts releases per element so tests can assert exactly-once.
type tracked struct {
	id       int
	released int
}

// newTrackedOwned builds an owning buffer plus a registry of its elements.
func newTrackedOwned(t *testing.T, capacity, fill int) (*Owned[*tracked], []*tracked) {
	t.Helper()
	o := NewOwned[*tracked](capacity, true, func(e *tracked) {
		e.released++
	})
	elems := make([]*tracked, fill)
	for i := range elems {
		elems[i] = &tracked{id: i}
		if err := o.Add(elems[i]); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	return o, elems
}

// assertReleases verifies each element's release count.
func assertReleases(t *testing.T, elems []*tracked, want []int) {
	t.Helper()
	for i, e := range elems {
		if e.released != want[i] {
			t.Errorf("element %d released %d times, want %d", e.id, e.released, want[i])
		}
	}
}

func TestOwnedRemoveReleasesAndZeroes(t *testing.T) {
	o, elems := newTrackedOwned(t, 4, 3)
	got, err := o.Remove()
	if err != nil || got != elems[0] {
		t.Fatalf("Remove = %v, %v; want element 0, nil", got, err)
	}
	assertReleases(t, elems, []int{1, 0, 0})
	if o.data[0] != nil {
		t.Error("vacated slot 0 not zeroed")
	}
	if o.data[1] == nil || o.data[2] == nil {
		t.Error("live slots zeroed")
	}
}

func TestOwnedRemoveNReleasesEachOnce(t *testing.T) {
	o, elems := newTrackedOwned(t, 4, 4)
	batch, err := o.RemoveN(3)
	if err != nil || len(batch) != 3 {
		t.Fatalf("RemoveN(3) = %v, %v", batch, err)
	}
	assertReleases(t, elems, []int{1, 1, 1, 0})
	for i := 0; i < 3; i++ {
		if o.data[i] != nil {
			t.Errorf("vacated slot %d not zeroed", i)
		}
	}
}

func TestOwnedDeleteAcrossWrapBoundary(t *testing.T) {
	const capacity = 6
	o, elems := newTrackedOwned(t, capacity, capacity)
	if _, err := o.RemoveN(4); err != nil {
		t.Fatalf("RemoveN(4): %v", err)
	}
	// head = 4; refill so the logical range wraps: physical layout is
	// slots 4,5 then 0,1,2,3.
	refill := make([]*tracked, 4)
	for i := range refill {
		refill[i] = &tracked{id: 100 + i}
		if err := o.Add(refill[i]); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if o.Len() != capacity {
		t.Fatalf("Len = %d, want %d", o.Len(), capacity)
	}
	// Delete 4 oldest: physical spans [4,5] and [0,1].
	if err := o.Delete(4); err != nil {
		t.Fatalf("Delete(4): %v", err)
	}
	// Original elements 4 and 5 sat in slots 4 and 5; both leave here.
	assertReleases(t, elems, []int{1, 1, 1, 1, 1, 1})
	for i, e := range refill {
		want := 0
		if i < 2 {
			want = 1 // elements 100, 101 occupied slots 0 and 1
		}
		if e.released != want {
			t.Errorf("refill element %d released %d times, want %d", e.id, e.released, want)
		}
	}
	for _, slot := range []int{4, 5, 0, 1} {
		if o.data[slot] != nil {
			t.Errorf("vacated slot %d not zeroed", slot)
		}
	}
	if o.Len() != 2 {
		t.Errorf("Len = %d after Delete(4), want 2", o.Len())
	}
	if got, err := o.Peek(0); err != nil || got.id != 102 {
		t.Errorf("Peek(0) = %v, %v; want element 102", got, err)
	}
}

func TestOwnedDeleteInvalidReleasesNothing(t *testing.T) {
	o, elems := newTrackedOwned(t, 4, 4)
	if err := o.Delete(5); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("Delete(capacity+1) = %v, want ErrIndexOutOfRange", err)
	}
	assertReleases(t, elems, []int{0, 0, 0, 0})
	if o.Len() != 4 {
		t.Errorf("Len = %d after failed Delete, want 4", o.Len())
	}
}

func TestOwnedClearReleasesFullStorage(t *testing.T) {
	// head == tail with the full flag set: the release pass must cover the
	// whole storage, not zero slots.
	o, elems := newTrackedOwned(t, 4, 4)
	o.Clear()
	assertReleases(t, elems, []int{1, 1, 1, 1})
	if o.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", o.Len())
	}
	for i := range o.data {
		if o.data[i] != nil {
			t.Errorf("slot %d not zeroed after Clear", i)
		}
	}
}

func TestOwnedCloseReleasesExactlyOnce(t *testing.T) {
	o, elems := newTrackedOwned(t, 6, 5)
	// Remove two up front; they are released on the way out.
	for i := 0; i < 2; i++ {
		if _, err := o.Remove(); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	// Every element released exactly once: the removed ones by Remove, the
	// remaining ones by the first Close, none by the second.
	assertReleases(t, elems, []int{1, 1, 1, 1, 1})
}

func TestOwnedNonOwningZeroesWithoutReleasing(t *testing.T) {
	released := 0
	o := NewOwned[*tracked](4, false, func(*tracked) { released++ })
	e := &tracked{id: 7}
	if err := o.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := o.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if released != 0 {
		t.Errorf("non-owning buffer released %d elements", released)
	}
	// The reference is still dropped so the slot does not pin the element.
	if o.data[0] != nil {
		t.Error("vacated slot not zeroed on non-owning buffer")
	}
}

func TestOwnedSetOwnsToggles(t *testing.T) {
	o, elems := newTrackedOwned(t, 4, 2)
	if !o.Owns() {
		t.Fatal("Owns = false, want true")
	}
	o.SetOwns(false)
	if _, err := o.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	o.SetOwns(true)
	if _, err := o.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Only the element removed while owning was released.
	assertReleases(t, elems, []int{0, 1})
}
