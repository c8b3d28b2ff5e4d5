package smallvec

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Index is the set of unsigned integer types usable as a Vec's length and
// capacity fields. Every member is strictly narrower than a 64-bit machine
// word; checkIndexWidth rejects the pairings that are not narrower than the
// word of the build target (uint32 on a 32-bit build).
//
// Values of an Index type support the native +, -, comparison and shift
// operators, which serve as the unchecked arithmetic inside the container.
// The call sites guarantee the operands are in range: additions happen only
// after a capacity check and subtractions only on nonzero values.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// maxIndex returns the largest value representable by I. It is the hard
// capacity ceiling for any Vec indexed by I.
func maxIndex[I Index]() I {
	return ^I(0)
}

// indexBits returns the width of I in bits.
func indexBits[I Index]() int {
	return int(unsafe.Sizeof(I(0))) * 8
}

// half returns v >> 1.
func half[I Index](v I) I {
	return v >> 1
}

// satAdd returns a+b, saturating at maxIndex instead of wrapping.
func satAdd[I Index](a, b I) I {
	if a > maxIndex[I]()-b {
		return maxIndex[I]()
	}
	return a + b
}

// satMul returns a*b, saturating at maxIndex instead of wrapping.
func satMul[I Index](a, b I) I {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/a != b {
		return maxIndex[I]()
	}
	return p
}

// checkIndexWidth panics unless I is strictly narrower than the machine word
// of the build target. On 64-bit targets every Index member passes; on 32-bit
// targets uint32 is rejected. Called from New and again on first growth so
// zero-value containers are covered too.
func checkIndexWidth[I Index]() {
	if w := indexBits[I](); w >= bits.UintSize {
		panic(fmt.Sprintf("smallvec: %d-bit index is not narrower than the %d-bit machine word", w, bits.UintSize))
	}
}

// checkElemSize panics for zero-sized element types, which the container
// does not support.
func checkElemSize[T any]() {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("smallvec: zero-sized element types are not supported")
	}
}
