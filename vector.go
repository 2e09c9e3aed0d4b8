package vector

import (
	"fmt"
	"iter"
	"slices"
)

// Vector is a resizable contiguous sequence of T.
//
// Elements at positions [0, Len()) are live. Slots in [Len(), Cap()) are
// allocated and hold the zero value of T; they are never exposed. The zero
// Vector is empty and ready to use without allocating.
//
// Positions returned by and passed to Emplace, Insert and Erase are plain
// indexes; End() is the position one past the last element. Pointers and
// slices obtained from a Vector are invalidated by any operation that
// reallocates or shifts elements.
//
// A Vector must not be copied after first use; use Clone, Assign, Take or
// MoveFrom instead. It is not safe for concurrent use.
type Vector[T any] struct {
	data RawMemory[T]
	size int
}

// New creates a vector holding size zero-valued elements, with a capacity
// of exactly size. New(0) does not allocate.
func New[T any](size int) *Vector[T] {
	return &Vector[T]{data: NewRawMemory[T](size), size: size}
}

// Of creates a vector holding the given values, with a capacity of exactly
// len(values). The values are transferred as-is.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{data: NewRawMemory[T](len(values)), size: len(values)}
	copy(v.data.Offset(0), values)
	return v
}

// Clone returns an independent copy of v. The copy's capacity equals v's
// length, and every element is copy-constructed through Cloner when T
// implements it. If a Clone panics, v is untouched and no partial copy
// survives.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{data: NewRawMemory[T](v.size)}
	cloneRange(traitsOf[T](), c.data.Offset(0), v.Data())
	c.size = v.size
	return c
}

// NewFrom creates a vector that takes over src's buffer and elements,
// leaving src empty with no buffer.
func NewFrom[T any](src *Vector[T]) *Vector[T] {
	return src.Take()
}

// Take moves v's buffer and elements into a new vector and leaves v empty,
// with no buffer.
func (v *Vector[T]) Take() *Vector[T] {
	t := &Vector[T]{}
	t.data.MoveFrom(&v.data)
	t.size = v.size
	v.size = 0
	return t
}

// Assign replaces the contents of v with copies of the elements of src.
//
// When src does not fit into v's capacity, a full copy is built first and
// swapped in, so a panicking Clone leaves v untouched. Otherwise the
// existing capacity is reused: overlapping elements are overwritten, then
// the surplus is destroyed or the remainder is copy-constructed.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	if src.size > v.data.Capacity() {
		c := src.Clone()
		v.Swap(c)
		c.Release()
		return
	}

	tr := traitsOf[T]()
	dst := v.data.Offset(0)
	from := src.Data()
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		val := cloneValue(tr, &from[i])
		if tr.destroyer {
			any(&dst[i]).(Destroyer).Destroy()
		}
		dst[i] = val
	}
	if src.size < v.size {
		destroyRange(tr, dst[src.size:v.size])
	} else {
		cloneRange(tr, dst[v.size:src.size], from[v.size:])
	}
	v.size = src.size
	v.check()
}

// MoveFrom destroys the elements of v and takes over src's buffer and
// elements, leaving src empty with no buffer.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.data.MoveFrom(&src.data)
	v.size = src.size
	src.size = 0
}

// Swap exchanges the buffers and elements of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Release destroys every element and drops the buffer. The vector is empty
// and may be reused afterwards.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	destroyRange(traitsOf[T](), v.data.Offset(0)[:v.size])
	v.size = 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// IsEmpty reports whether v holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// At returns a pointer to the element at index. It panics if index is not
// in [0, Len()).
func (v *Vector[T]) At(index int) *T {
	return &v.data.Offset(0)[:v.size][index]
}

// Get returns the element at index. It panics if index is not in
// [0, Len()).
func (v *Vector[T]) Get(index int) T {
	return v.data.Offset(0)[:v.size][index]
}

// Set replaces the element at index with value, running the Destroy hook on
// the element it overwrites. It panics if index is not in [0, Len()).
func (v *Vector[T]) Set(index int, value T) {
	slot := v.At(index)
	if traitsOf[T]().destroyer {
		any(slot).(Destroyer).Destroy()
	}
	*slot = value
}

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Data returns the live elements as a slice whose capacity is clipped to
// Len(), so appending to it never writes into v's spare slots.
func (v *Vector[T]) Data() []T {
	return v.data.Offset(0)[:v.size:v.size]
}

// All returns an iterator over positions and elements, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.Data())
}

// Backward returns an iterator over positions and elements, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.Data())
}

// String implements fmt.Stringer.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

func (v *Vector[T]) check() {
	if debug && (v.size < 0 || v.size > v.data.Capacity()) {
		panic(fmt.Sprintf("vector: size %d outside capacity %d", v.size, v.data.Capacity()))
	}
}
