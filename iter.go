package smallvec

import (
	"iter"
	"unsafe"
)

// IntoIter drains a Vec's elements by value, from either end. It owns the
// backing array transferred out of the source Vec; the start/end cursors
// bracket the elements not yet yielded.
type IntoIter[T any] struct {
	buf   unsafe.Pointer // slot 0 of the transferred backing array
	cap   uint           // original capacity, 0 when nothing was allocated
	start unsafe.Pointer // next element to yield from the front
	end   unsafe.Pointer // one past the next element to yield from the back
}

// IntoIter transfers ownership of the backing array and the live elements to
// a new iterator. The source Vec is reset to the empty unallocated state so
// it can never release the transferred buffer.
func (v *Vec[T, I]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		buf:   v.ptr,
		cap:   uint(v.cap),
		start: v.ptr,
		// An unallocated Vec has no array to offset into; both cursors
		// stay on the nil sentinel and the iterator is born exhausted.
		end: v.ptr,
	}
	if v.cap != 0 {
		var zero T
		it.end = unsafe.Add(v.ptr, uintptr(v.len)*unsafe.Sizeof(zero))
	}
	v.ptr = nil
	v.len = 0
	v.cap = 0
	return it
}

// Next yields the frontmost remaining element. The second return value is
// false once the iterator is exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.start == it.end {
		return zero, false
	}
	slot := (*T)(it.start)
	value := *slot
	*slot = zero // ownership moves out with the value
	it.start = unsafe.Add(it.start, unsafe.Sizeof(zero))
	return value, true
}

// NextBack yields the backmost remaining element. The second return value is
// false once the iterator is exhausted. Front and back draining may be
// interleaved freely; each element is yielded exactly once.
func (it *IntoIter[T]) NextBack() (T, bool) {
	var zero T
	if it.start == it.end {
		return zero, false
	}
	it.end = unsafe.Add(it.end, -int(unsafe.Sizeof(zero)))
	slot := (*T)(it.end)
	value := *slot
	*slot = zero
	return value, true
}

// Len returns the exact number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	var zero T
	return int((uintptr(it.end) - uintptr(it.start)) / unsafe.Sizeof(zero))
}

// All returns a range-over-func sequence draining the iterator from the
// front. Stopping early leaves the remaining elements in the iterator.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Backwards returns a range-over-func sequence draining the iterator from
// the back.
func (it *IntoIter[T]) Backwards() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.NextBack()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Release clears any elements not yet yielded and detaches the backing
// array. Safe to call on an exhausted or already released iterator.
func (it *IntoIter[T]) Release() {
	if it.cap == 0 {
		return
	}
	if n := it.Len(); n > 0 {
		clear(unsafe.Slice((*T)(it.start), n))
	}
	it.buf = nil
	it.start = nil
	it.end = nil
	it.cap = 0
}
