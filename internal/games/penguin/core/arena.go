package core

import (
	"errors"
	"fmt"
)

// ErrStaleHandle is returned when a handle refers to an entity that has
// been destroyed (or whose slot was since reused).
var ErrStaleHandle = errors.New("stale entity handle")

// Handle is a stable reference to an arena slot. The generation counter
// makes references to destroyed entities fail explicitly instead of
// silently touching whatever reused the slot.
type Handle struct {
	index      int
	generation uint32
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	return h.generation == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("entity(%d@%d)", h.index, h.generation)
}

type slot struct {
	actor      Actor
	generation uint32
	live       bool
}

// Arena owns every entity in the simulation. Slots are reused after a
// destroy; generations distinguish the tenants. Slots are individually
// allocated so actor pointers stay valid while new entities (score
// markers) are spawned mid-tick.
type Arena struct {
	slots []*slot
	free  []int
	count int
}

// Alloc places a new actor in the arena and returns its handle.
func (ar *Arena) Alloc(a Actor) Handle {
	ar.count++

	if n := len(ar.free); n > 0 {
		idx := ar.free[n-1]
		ar.free = ar.free[:n-1]
		s := ar.slots[idx]
		s.generation++
		s.actor = a
		s.live = true
		return Handle{index: idx, generation: s.generation}
	}

	ar.slots = append(ar.slots, &slot{actor: a, generation: 1, live: true})
	return Handle{index: len(ar.slots) - 1, generation: 1}
}

// Get resolves a handle to its actor, or nil if the handle is stale.
func (ar *Arena) Get(h Handle) *Actor {
	if h.index < 0 || h.index >= len(ar.slots) {
		return nil
	}
	s := ar.slots[h.index]
	if !s.live || s.generation != h.generation {
		return nil
	}
	return &s.actor
}

// Lookup resolves a handle or reports ErrStaleHandle. Callers that treat
// a stale reference as a hard fault use this form.
func (ar *Arena) Lookup(h Handle) (*Actor, error) {
	a := ar.Get(h)
	if a == nil {
		return nil, fmt.Errorf("%w: %s", ErrStaleHandle, h)
	}
	return a, nil
}

// Alive reports whether the handle still refers to a live entity.
func (ar *Arena) Alive(h Handle) bool {
	return ar.Get(h) != nil
}

// Free marks the slot dead and recycles it. The caller is responsible for
// clearing set memberships first.
func (ar *Arena) Free(h Handle) {
	if ar.Get(h) == nil {
		return
	}
	s := ar.slots[h.index]
	s.live = false
	s.actor = Actor{}
	ar.free = append(ar.free, h.index)
	ar.count--
}

// Count returns the number of live entities.
func (ar *Arena) Count() int {
	return ar.count
}

// Each visits every live entity in slot order. Slot order is stable
// within a tick, which keeps iteration deterministic for a fixed seed.
func (ar *Arena) Each(fn func(h Handle, a *Actor)) {
	for i := 0; i < len(ar.slots); i++ {
		s := ar.slots[i]
		if !s.live {
			continue
		}
		fn(Handle{index: i, generation: s.generation}, &s.actor)
	}
}
