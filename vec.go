// Package smallvec implements a growable contiguous container whose length
// and capacity fields use a caller-chosen narrow unsigned integer type.
// Typical usage: embed a Vec with a uint8 or uint16 index inside structs that
// are instantiated in bulk, where a full slice header would dominate the
// per-instance footprint.
package smallvec

import (
	"fmt"
	"unsafe"
)

// Vec is a growable array of T whose length and capacity are stored in the
// narrow unsigned integer type I instead of int. Not goroutine-safe; an
// instance may move between goroutines as a whole, but mutation requires
// exclusive access.
//
// The zero value is a valid empty Vec. It performs no allocation until the
// first element is pushed.
type Vec[T any, I Index] struct {
	ptr unsafe.Pointer // slot 0 of the backing array, nil while cap == 0
	len I              // live elements occupy slots [0, len)
	cap I              // slots in the backing array, 0 <= len <= cap <= maxIndex
}

// New creates an empty Vec and validates the T/I pairing: I must be strictly
// narrower than the machine word and T must not be zero-sized. Both
// violations panic here rather than surfacing later as corrupt state.
func New[T any, I Index]() Vec[T, I] {
	checkIndexWidth[I]()
	checkElemSize[T]()
	return Vec[T, I]{}
}

// firstAllocSlots picks the initial capacity by element size: small elements
// get more slots per allocation, large elements start at a single slot to
// bound over-allocation cost.
func firstAllocSlots[T any]() uint {
	var zero T
	switch size := unsafe.Sizeof(zero); {
	case size == 1:
		return 8
	case size <= 1024:
		return 4
	default:
		return 1
	}
}

// Len returns the number of live elements.
func (v *Vec[T, I]) Len() int {
	return int(v.len)
}

// Cap returns the number of slots in the backing array.
func (v *Vec[T, I]) Cap() int {
	return int(v.cap)
}

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T, I]) IsEmpty() bool {
	return v.len == 0
}

// Push appends value, growing the backing array if it is full.
// Panics with a capacity overflow if the capacity already equals the
// largest value representable by I.
func (v *Vec[T, I]) Push(value T) {
	if v.len == v.cap {
		v.grow()
	}
	*(*T)(unsafe.Add(v.ptr, uintptr(v.len)*unsafe.Sizeof(value))) = value
	v.len++
}

// Pop removes and returns the last element. The second return value is false
// when the Vec is empty; an empty Pop is a normal outcome, not a fault.
func (v *Vec[T, I]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	slot := (*T)(unsafe.Add(v.ptr, uintptr(v.len)*unsafe.Sizeof(zero)))
	value := *slot
	// The vacated slot must not keep the element's referents reachable.
	*slot = zero
	return value, true
}

// Insert places value at index, shifting elements at [index, len) one slot
// right. index == Len() appends. Panics when index is out of bounds.
func (v *Vec[T, I]) Insert(index int, value T) {
	if index < 0 || index > int(v.len) {
		panic(fmt.Sprintf("smallvec: insertion index %d should be <= len %d", index, v.len))
	}
	if v.len == v.cap {
		v.grow()
	}
	s := unsafe.Slice((*T)(v.ptr), uint(v.cap))
	copy(s[index+1:int(v.len)+1], s[index:int(v.len)])
	s[index] = value
	v.len++
}

// Remove deletes and returns the element at index, shifting the elements
// after it one slot left. Panics when index is out of bounds; unlike Insert,
// index == Len() is past the last element and is rejected.
func (v *Vec[T, I]) Remove(index int) T {
	if index < 0 || index >= int(v.len) {
		panic(fmt.Sprintf("smallvec: removal index %d should be < len %d", index, v.len))
	}
	var zero T
	s := unsafe.Slice((*T)(v.ptr), uint(v.cap))
	value := s[index]
	copy(s[index:int(v.len)-1], s[index+1:int(v.len)])
	v.len--
	s[v.len] = zero
	return value
}

// Extend appends a copy of every element of values in order.
func (v *Vec[T, I]) Extend(values []T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Slice returns the live elements as a slice sharing the backing array.
// The slice is valid until the next mutating operation; callers must not
// mutate the Vec while holding it. Returns nil when nothing was allocated.
func (v *Vec[T, I]) Slice() []T {
	if v.cap == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.ptr), uint(v.len))
}

// Clone returns a deep copy with the same length and capacity. Elements are
// copied by value; pointer-typed fields alias the originals' referents.
func (v *Vec[T, I]) Clone() Vec[T, I] {
	if v.cap == 0 {
		return Vec[T, I]{}
	}
	block := make([]T, uint(v.cap))
	copy(block, unsafe.Slice((*T)(v.ptr), uint(v.len)))
	return Vec[T, I]{
		ptr: unsafe.Pointer(unsafe.SliceData(block)),
		len: v.len,
		cap: v.cap,
	}
}

// Release clears every live slot and detaches the backing array, returning
// the Vec to its unallocated state. A Vec that never allocated is a no-op.
// The Vec remains usable afterwards, identical to a fresh empty one.
func (v *Vec[T, I]) Release() {
	if v.cap == 0 {
		return
	}
	clear(unsafe.Slice((*T)(v.ptr), uint(v.len)))
	v.ptr = nil
	v.len = 0
	v.cap = 0
}

// grow replaces the backing array with a larger one. The runtime allocator
// has no in-place realloc, so growth is allocate-and-copy; the old array is
// left to the collector. Allocation failure is a fatal runtime error, which
// matches the container's contract: growth either succeeds or the process
// cannot continue.
func (v *Vec[T, I]) grow() {
	// Zero-value Vecs skip New, so the construction checks re-run here.
	checkIndexWidth[I]()
	checkElemSize[T]()

	if v.cap == maxIndex[I]() {
		panic("smallvec: capacity overflow")
	}

	var newCap I
	if v.cap == 0 {
		newCap = I(firstAllocSlots[T]())
	} else {
		newCap = satAdd(v.cap, v.cap)
	}

	block := make([]T, uint(newCap))
	if v.cap != 0 {
		copy(block, unsafe.Slice((*T)(v.ptr), uint(v.len)))
	}
	v.ptr = unsafe.Pointer(unsafe.SliceData(block))
	v.cap = newCap
}
