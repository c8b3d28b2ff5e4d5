package smallvec

import "fmt"

// Example demonstrates basic container usage
func Example() {
	// uint8 index: up to 255 elements, minimal header
	v := New[int, uint8]()
	defer v.Release() // Always clean up

	v.Extend([]int{1, 2, 3})
	v.Insert(1, 99)
	fmt.Printf("Elements: %v\n", v.Slice())

	x, _ := v.Pop()
	fmt.Printf("Popped: %d\n", x)
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	removed := v.Remove(1)
	fmt.Printf("Removed: %d\n", removed)
	fmt.Printf("Elements: %v\n", v.Slice())

	// Output:
	// Elements: [1 99 2 3]
	// Popped: 3
	// Len: 3, Cap: 4
	// Removed: 99
	// Elements: [1 2]
}

// ExampleVec_IntoIter demonstrates draining a container from both ends
func ExampleVec_IntoIter() {
	v := New[string, uint16]()
	v.Extend([]string{"a", "b", "c", "d"})

	it := v.IntoIter()
	defer it.Release()

	front, _ := it.Next()
	back, _ := it.NextBack()
	fmt.Printf("front=%s back=%s remaining=%d\n", front, back, it.Len())

	for s := range it.All() {
		fmt.Println(s)
	}

	// Output:
	// front=a back=d remaining=2
	// b
	// c
}

// ExampleVec_Metrics demonstrates footprint inspection
func ExampleVec_Metrics() {
	v := New[byte, uint8]()
	v.Extend([]byte{1, 2, 3, 4})

	m := v.Metrics()
	fmt.Printf("len=%d cap=%d\n", m.Len, m.Cap)
	fmt.Printf("in use: %d of %d bytes (%.1f%%)\n", m.SizeInUse, m.ByteCapacity, m.Utilization*100)
	fmt.Printf("index width: %d bits\n", m.IndexBits)

	// Output:
	// len=4 cap=8
	// in use: 4 of 8 bytes (50.0%)
	// index width: 8 bits
}
