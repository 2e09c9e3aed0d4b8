package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMemory(t *testing.T) {
	t.Run("ZeroCapacityDoesNotAllocate", func(t *testing.T) {
		r := NewRawMemory[int](0)
		assert.Equal(t, 0, r.Capacity())
		assert.Nil(t, r.slots)
		assert.Empty(t, r.Offset(0))
	})

	t.Run("Allocate", func(t *testing.T) {
		r := NewRawMemory[string](4)
		require.Equal(t, 4, r.Capacity())
		assert.Len(t, r.Offset(1), 3)
		assert.Empty(t, r.Offset(4))

		*r.Slot(2) = "x"
		assert.Equal(t, "x", r.Offset(0)[2])
		assert.Same(t, r.Slot(2), &r.Offset(2)[0])
	})

	t.Run("NegativeCapacity", func(t *testing.T) {
		assert.Panics(t, func() { NewRawMemory[int](-1) })
	})

	t.Run("SlotOutOfRange", func(t *testing.T) {
		r := NewRawMemory[int](2)
		assert.Panics(t, func() { r.Slot(2) })
		assert.Panics(t, func() { r.Offset(3) })
	})

	t.Run("Swap", func(t *testing.T) {
		a := NewRawMemory[int](2)
		b := NewRawMemory[int](5)
		*a.Slot(0) = 1
		*b.Slot(0) = 2
		a.Swap(&b)
		assert.Equal(t, 5, a.Capacity())
		assert.Equal(t, 2, b.Capacity())
		assert.Equal(t, 2, *a.Slot(0))
		assert.Equal(t, 1, *b.Slot(0))
	})

	t.Run("MoveFrom", func(t *testing.T) {
		a := NewRawMemory[int](1)
		b := NewRawMemory[int](3)
		a.MoveFrom(&b)
		assert.Equal(t, 3, a.Capacity())
		assert.Equal(t, 0, b.Capacity())
		a.MoveFrom(&a)
		assert.Equal(t, 3, a.Capacity())
	})

	t.Run("ZeroAndRelease", func(t *testing.T) {
		r := NewRawMemory[int](3)
		for i := range 3 {
			*r.Slot(i) = i + 1
		}
		r.Zero(1, 3)
		assert.Equal(t, []int{1, 0, 0}, r.Offset(0))
		r.Release()
		assert.Equal(t, 0, r.Capacity())
	})
}
