// Package smallvec implements a growable array whose length and capacity
// fields use a narrow unsigned integer width chosen by the caller.
//
// # Overview
//
// A plain Go slice header costs three machine words. Many containers never
// hold more than 255 or 65535 elements, and when such containers are
// instantiated in bulk or embedded inside larger structures, word-sized
// length and capacity fields are wasted space. Vec stores both in a uint8,
// uint16 or uint32 instead:
//
//   - Vec[T, uint8]  — up to 255 elements, 16-byte header on 64-bit targets
//   - Vec[T, uint16] — up to 65535 elements
//   - Vec[T, uint32] — up to ~4.2 billion elements
//
// # Basic Usage
//
//	v := smallvec.New[int, uint8]()
//	defer v.Release() // Clean up when done
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(1, 99)
//
//	for _, x := range v.Slice() {
//		fmt.Println(x)
//	}
//
//	if x, ok := v.Pop(); ok {
//		fmt.Println("popped", x)
//	}
//
// The zero value of Vec is a valid empty container that allocates nothing
// until the first Push.
//
// # Index Width Rules
//
// The index type must be strictly narrower than the machine word. The Index
// constraint enforces the upper half of this at compile time (no 64-bit
// index exists); New enforces the rest at construction time, rejecting
// uint32 on a 32-bit build. An unsupported pairing panics, it is never
// silently clamped. Zero-sized element types are rejected the same way.
//
// # Growth
//
// The first Push allocates 8 slots for 1-byte elements, 4 slots for
// elements up to 1 KiB, and 1 slot beyond that. A full Vec doubles its
// capacity, saturating at the index type's maximum; a growth request at
// that maximum panics with a capacity overflow. Capacity never shrinks.
//
// # Draining
//
// IntoIter transfers ownership of the backing array out of a Vec and
// yields the elements by value from either end:
//
//	it := v.IntoIter()
//	defer it.Release()
//
//	for x := range it.All() {
//		fmt.Println(x)
//	}
//
// # Thread Safety
//
// Vec and IntoIter perform no internal synchronization. An instance may be
// handed between goroutines as a whole, but concurrent mutation of one
// instance must be prevented by the caller.
//
// # Important Notes
//
//   - Misuse panics: out-of-bounds Insert/Remove indexes, capacity
//     overflow, unsupported index widths and zero-sized elements are all
//     programming errors, not recoverable conditions
//   - Pop on an empty Vec is not misuse; it returns (zero, false)
//   - Slices returned by Slice share the backing array and are invalidated
//     by the next mutating operation
//
// # Metrics and Monitoring
//
// The container reports its footprint for auditing the narrow-width saving:
//
//	m := v.Metrics()
//	fmt.Printf("header: %d bytes\n", m.HeaderBytes)
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
package smallvec
