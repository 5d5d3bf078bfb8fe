package shooter

import "iter"

// Pool is a fixed-capacity set of slots, each either empty or holding one
// active entity. All slots are allocated up front; nothing is allocated
// during play. Handles are slot indexes and are only meaningful until the
// slot is released: a reacquired slot is a new entity.
type Pool[T any] struct {
	slots  []T
	active []bool
	count  int
}

// NewPool creates a pool with the given number of slots.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Acquire claims the first empty slot, zeroes it and returns its handle.
// Returns false when every slot is in use; the pool never grows.
func (p *Pool[T]) Acquire() (int, bool) {
	for i, used := range p.active {
		if used {
			continue
		}
		var zero T
		p.slots[i] = zero
		p.active[i] = true
		p.count++
		return i, true
	}
	return -1, false
}

// Release empties a slot. Releasing an empty slot or an invalid handle
// does nothing.
func (p *Pool[T]) Release(h int) {
	if !p.Active(h) {
		return
	}
	p.active[h] = false
	p.count--
}

// Active reports whether the handle refers to an occupied slot.
func (p *Pool[T]) Active(h int) bool {
	return h >= 0 && h < len(p.active) && p.active[h]
}

// Get returns the entity in an occupied slot, or nil.
func (p *Pool[T]) Get(h int) *T {
	if !p.Active(h) {
		return nil
	}
	return &p.slots[h]
}

// All iterates over occupied slots in slot order.
// The body may release the slot it is visiting.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.slots {
			if !p.active[i] {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}

// Len returns the number of occupied slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Clear empties every slot.
func (p *Pool[T]) Clear() {
	for i := range p.active {
		p.active[i] = false
	}
	p.count = 0
}
