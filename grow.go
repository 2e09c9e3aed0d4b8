package vector

import "fmt"

// grownCapacity returns the capacity used when an insertion finds the
// buffer full.
func (v *Vector[T]) grownCapacity() int {
	return max(1, 2*v.data.Capacity())
}

// Reserve makes room for at least capacity elements. It is a no-op when
// capacity does not exceed Cap(); otherwise it reallocates to exactly
// capacity. Len() and the elements are unchanged.
func (v *Vector[T]) Reserve(capacity int) {
	if capacity <= v.data.Capacity() {
		return
	}
	fresh := NewRawMemory[T](capacity)
	v.adopt(&fresh, v.size, 0)
}

// Resize changes the number of elements to size. Shrinking destroys the
// elements in [size, Len()). Growing reserves exactly size slots when
// needed and appends zero-valued elements.
func (v *Vector[T]) Resize(size int) {
	if size < 0 {
		panic(fmt.Sprintf("vector: negative size %d", size))
	}
	if size < v.size {
		destroyRange(traitsOf[T](), v.data.Offset(0)[size:v.size])
	} else {
		v.Reserve(size)
		// spare slots already hold zero values
	}
	v.size = size
	v.check()
}

// ShrinkToFit reallocates so that Cap() equals Len().
func (v *Vector[T]) ShrinkToFit() {
	if v.data.Capacity() == v.size {
		return
	}
	fresh := NewRawMemory[T](v.size)
	v.adopt(&fresh, v.size, 0)
}

// adopt relocates the live elements into fresh, leaving the gap slots at
// [pos, pos+gap) of fresh untouched, then retires the old elements and
// swaps fresh in. The gap slots must already be constructed by the caller.
//
// The old buffer is not modified until every element has been relocated. If
// relocation panics, everything constructed in fresh is destroyed and v is
// left exactly as it was.
func (v *Vector[T]) adopt(fresh *RawMemory[T], pos, gap int) {
	tr := traitsOf[T]()
	old := v.data.Offset(0)[:v.size]
	dst := fresh.Offset(0)

	built := 0
	done := false
	defer func() {
		if !done {
			destroyRange(tr, dst[pos:pos+gap])
			destroyRange(tr, dst[:built])
		}
	}()

	relocate(tr, dst[:pos], old[:pos])
	built = pos
	relocate(tr, dst[pos+gap:], old[pos:])
	done = true

	retire(tr, old)
	v.data.Swap(fresh)
	fresh.Release()
	v.check()
}
