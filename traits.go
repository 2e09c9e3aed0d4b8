package vector

import (
	"reflect"
	"sync"
)

// Cloner is implemented by element types whose copies must not share state
// with the original. Vector uses Clone wherever it copy-constructs an
// element; types that do not implement it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented by element types that release resources when an
// element leaves the container. Destroy is called on the element in place,
// right before its slot is reset to the zero value.
//
// Slots whose value was moved elsewhere are reset without calling Destroy.
type Destroyer interface {
	Destroy()
}

// Pinned is implemented by element types that must be relocated into a new
// buffer through Clone, never by move. Growth clones every element and
// destroys the originals only once all clones succeeded, so a panicking
// Clone leaves the old buffer intact. A Pinned type without Clone cannot be
// copied and is moved.
//
// Pinned only governs relocation between buffers. Shifts inside one buffer
// (Emplace, Insert, Erase) move elements by assignment, and Clone returns a
// value, so Pinned gives no guarantee about a value's address.
type Pinned interface {
	Pinned()
}

// relocation selects how elements are transferred into a new buffer.
type relocation uint8

const (
	relocateMove relocation = iota
	relocateCopy
)

// elemTraits describes the hooks an element type provides.
type elemTraits struct {
	cloner    bool
	destroyer bool
	relocate  relocation
}

// traitCache maps reflect.Type to elemTraits.
var traitCache sync.Map

// traitsOf returns the traits of T. They are resolved once per element type
// and cached.
func traitsOf[T any]() elemTraits {
	typ := reflect.TypeFor[T]()
	if tr, ok := traitCache.Load(typ); ok {
		return tr.(elemTraits)
	}

	// Method sets of *T include the value receiver methods of T.
	var probe any = (*T)(nil)
	_, cloner := probe.(Cloner[T])
	_, destroyer := probe.(Destroyer)
	_, pinned := probe.(Pinned)

	tr := elemTraits{cloner: cloner, destroyer: destroyer, relocate: relocateMove}
	if pinned && cloner {
		tr.relocate = relocateCopy
	}
	traitCache.Store(typ, tr)
	return tr
}

// cloneValue copy-constructs a value from src.
func cloneValue[T any](tr elemTraits, src *T) T {
	if tr.cloner {
		return any(src).(Cloner[T]).Clone()
	}
	return *src
}

// destroyRange runs the Destroy hook on every element of s and resets the
// slots to the zero value.
func destroyRange[T any](tr elemTraits, s []T) {
	if tr.destroyer {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	clear(s)
}

// cloneRange copy-constructs src into the zeroed slots of dst. If a Clone
// panics, the clones built so far are destroyed before the panic continues,
// so dst is left as it was found.
func cloneRange[T any](tr elemTraits, dst, src []T) {
	if !tr.cloner {
		copy(dst, src)
		return
	}
	n := 0
	defer func() {
		if n < len(src) {
			destroyRange(tr, dst[:n])
		}
	}()
	for ; n < len(src); n++ {
		dst[n] = any(&src[n]).(Cloner[T]).Clone()
	}
}

// relocate transfers src into the zeroed slots of dst, by move or by copy
// per the element traits. The source is left intact either way; the caller
// retires it once the whole transfer succeeded.
func relocate[T any](tr elemTraits, dst, src []T) {
	if tr.relocate == relocateCopy {
		cloneRange(tr, dst, src)
		return
	}
	copy(dst, src)
}

// retire disposes of a source range after a successful relocation. Moved
// elements now live elsewhere and are only cleared; copied originals are
// destroyed.
func retire[T any](tr elemTraits, src []T) {
	if tr.relocate == relocateCopy {
		destroyRange(tr, src)
		return
	}
	clear(src)
}
