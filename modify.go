package vector

import "fmt"

// constructAt runs construct on slot. If construct panics, the slot is reset
// to the zero value before the panic continues.
func constructAt[T any](slot *T, construct func(*T)) {
	done := false
	defer func() {
		if !done {
			var zero T
			*slot = zero
		}
	}()
	construct(slot)
	done = true
}

// PushBack appends value and returns a pointer to the stored element. The
// value is transferred as-is; clone it first to keep an independent copy.
//
// When the buffer is full, capacity doubles (starting at 1) and the new
// element is stored in the new buffer before the existing ones are
// relocated.
func (v *Vector[T]) PushBack(value T) *T {
	if v.size == v.data.Capacity() {
		fresh := NewRawMemory[T](v.grownCapacity())
		*fresh.Slot(v.size) = value
		v.adopt(&fresh, v.size, 1)
	} else {
		*v.data.Slot(v.size) = value
	}
	v.size++
	return v.data.Slot(v.size - 1)
}

// EmplaceBack appends an element built in place by construct and returns a
// pointer to it. The slot passed to construct holds the zero value.
//
// If construct panics, v keeps its length, capacity and elements.
func (v *Vector[T]) EmplaceBack(construct func(*T)) *T {
	if v.size == v.data.Capacity() {
		fresh := NewRawMemory[T](v.grownCapacity())
		construct(fresh.Slot(v.size))
		v.adopt(&fresh, v.size, 1)
	} else {
		constructAt(v.data.Slot(v.size), construct)
	}
	v.size++
	return v.data.Slot(v.size - 1)
}

// PopBack destroys the last element. It panics if v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
	destroyRange(traitsOf[T](), v.data.Offset(v.size)[:1])
}

// Emplace builds an element in place at pos, shifting the elements at and
// after pos one position to the right, and returns pos. pos must be in
// [0, Len()]; Emplace(End(), f) behaves exactly like EmplaceBack(f).
//
// If construct panics, v keeps its length, capacity and elements.
func (v *Vector[T]) Emplace(pos int, construct func(*T)) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: emplace position %d out of range [0, %d]", pos, v.size))
	}
	if pos == v.size {
		v.EmplaceBack(construct)
		return pos
	}

	if v.size == v.data.Capacity() {
		fresh := NewRawMemory[T](v.grownCapacity())
		construct(fresh.Slot(pos))
		v.adopt(&fresh, pos, 1)
		v.size++
		return pos
	}

	var elem T
	construct(&elem)
	s := v.data.Offset(0)
	s[v.size] = s[v.size-1]
	for i := v.size - 1; i > pos; i-- {
		s[i] = s[i-1]
	}
	s[pos] = elem
	v.size++
	return pos
}

// Insert stores value at pos, shifting the elements at and after pos one
// position to the right, and returns pos. The value is transferred as-is.
func (v *Vector[T]) Insert(pos int, value T) int {
	return v.Emplace(pos, func(slot *T) { *slot = value })
}

// Erase destroys the element at pos and shifts the following elements one
// position to the left. It returns pos, which now holds the element that
// followed the removed one, or equals End() if the last element was
// removed.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	tr := traitsOf[T]()
	s := v.data.Offset(0)[:v.size]
	if tr.destroyer {
		any(&s[pos]).(Destroyer).Destroy()
	}
	copy(s[pos:], s[pos+1:])
	v.size--
	// the vacated slot was moved from
	v.data.Zero(v.size, v.size+1)
	return pos
}
