// Package vector provides a generic resizable contiguous container with
// amortized constant-time append, positional insert and erase, and strong
// failure guarantees on every reallocating operation.
//
// Storage is split in two layers. RawMemory owns a block of slots and knows
// nothing about element lifetimes. Vector layers construction, destruction
// and the growth policy on top of it.
package vector

import "fmt"

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawMemory owns a block of capacity slots for values of type T.
//
// It never treats slot contents as live: constructing, destroying and
// relocating elements is the job of the owner. A zero RawMemory has no block
// and a capacity of 0.
type RawMemory[T any] struct {
	_     noCopy
	slots []T
}

// NewRawMemory allocates a block of capacity slots. A capacity of 0 yields
// an empty block without touching the allocator; a negative one panics.
func NewRawMemory[T any](capacity int) RawMemory[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("vector: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return RawMemory[T]{}
	}
	return RawMemory[T]{slots: make([]T, capacity)}
}

// Capacity returns the number of slots in the block.
func (r *RawMemory[T]) Capacity() int {
	return len(r.slots)
}

// Offset returns the slots starting at offset. An offset equal to the
// capacity yields an empty slice.
func (r *RawMemory[T]) Offset(offset int) []T {
	if debug && (offset < 0 || offset > len(r.slots)) {
		panic(fmt.Sprintf("vector: raw offset %d out of range [0, %d]", offset, len(r.slots)))
	}
	return r.slots[offset:]
}

// Slot returns a pointer to the slot at index, which must be below the
// capacity.
func (r *RawMemory[T]) Slot(index int) *T {
	if debug && (index < 0 || index >= len(r.slots)) {
		panic(fmt.Sprintf("vector: raw slot %d out of range [0, %d)", index, len(r.slots)))
	}
	return &r.slots[index]
}

// Swap exchanges the blocks owned by r and other.
func (r *RawMemory[T]) Swap(other *RawMemory[T]) {
	r.slots, other.slots = other.slots, r.slots
}

// MoveFrom takes ownership of other's block, leaving other empty. Any block
// r held before is dropped without looking at its contents.
func (r *RawMemory[T]) MoveFrom(other *RawMemory[T]) {
	if r == other {
		return
	}
	r.slots = other.slots
	other.slots = nil
}

// Zero resets the slots in [from, to) to the zero value of T. It runs no
// element hooks.
func (r *RawMemory[T]) Zero(from, to int) {
	clear(r.slots[from:to])
}

// Release drops the block. Element hooks are not run.
func (r *RawMemory[T]) Release() {
	r.slots = nil
}
