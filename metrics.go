package smallvec

import "unsafe"

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vec[T, I]) SizeInUse() int {
	var zero T
	return int(v.len) * int(unsafe.Sizeof(zero))
}

// ByteCapacity returns the size of the backing array in bytes.
func (v *Vec[T, I]) ByteCapacity() int {
	var zero T
	return int(v.cap) * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of bytes in use to backing-array bytes
// (0.0 to 1.0). Returns 0.0 while nothing is allocated.
func (v *Vec[T, I]) Utilization() float64 {
	capacity := v.ByteCapacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.SizeInUse()) / float64(capacity)
}

// HeaderBytes returns the size of the Vec header itself. This is the number
// the narrow index width exists to shrink: a pointer plus two I-width fields,
// versus the three machine words of a plain slice header.
func (v *Vec[T, I]) HeaderBytes() int {
	return int(unsafe.Sizeof(*v))
}

// Metrics returns a snapshot of container statistics.
func (v *Vec[T, I]) Metrics() VecMetrics {
	var zero T
	return VecMetrics{
		Len:          int(v.len),
		Cap:          int(v.cap),
		ElemSize:     int(unsafe.Sizeof(zero)),
		IndexBits:    indexBits[I](),
		SizeInUse:    v.SizeInUse(),
		ByteCapacity: v.ByteCapacity(),
		HeaderBytes:  v.HeaderBytes(),
		Utilization:  v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len          int     // Live elements
	Cap          int     // Slots in the backing array
	ElemSize     int     // Bytes per element
	IndexBits    int     // Width of the length/capacity fields
	SizeInUse    int     // Bytes occupied by live elements
	ByteCapacity int     // Bytes in the backing array
	HeaderBytes  int     // Size of the Vec header itself
	Utilization  float64 // Ratio of used to total backing bytes (0.0-1.0)
}
