package smallvec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestMetricsUnallocated(t *testing.T) {
	v := New[int64, uint8]()

	m := v.Metrics()
	assert.Equal(t, 0, m.Len)
	assert.Equal(t, 0, m.Cap)
	assert.Equal(t, 0, m.SizeInUse)
	assert.Equal(t, 0, m.ByteCapacity)
	assert.Equal(t, 0.0, m.Utilization)
	assert.Equal(t, 8, m.ElemSize)
	assert.Equal(t, 8, m.IndexBits)
}

func TestMetrics(t *testing.T) {
	v := New[int64, uint8]()
	v.Extend([]int64{1, 2, 3})

	m := v.Metrics()
	assert.Equal(t, 3, m.Len)
	assert.Equal(t, 4, m.Cap)
	assert.Equal(t, 24, m.SizeInUse)
	assert.Equal(t, 32, m.ByteCapacity)
	assert.InDelta(t, 0.75, m.Utilization, 1e-9)
	assert.Equal(t, int(unsafe.Sizeof(v)), m.HeaderBytes)
}

func TestHeaderBytesByWidth(t *testing.T) {
	v8 := New[int64, uint8]()
	v16 := New[int64, uint16]()
	v32 := New[int64, uint32]()

	assert.LessOrEqual(t, v8.HeaderBytes(), v16.HeaderBytes())
	assert.LessOrEqual(t, v16.HeaderBytes(), v32.HeaderBytes())

	// The point of the narrow widths: smaller header than a slice's
	// three machine words.
	var s []int64
	assert.Less(t, v8.HeaderBytes(), int(unsafe.Sizeof(s)))
}

func TestUtilizationAfterGrowth(t *testing.T) {
	v := New[byte, uint8]()
	v.Push(1) // cap 8, len 1

	assert.Equal(t, 1, v.SizeInUse())
	assert.Equal(t, 8, v.ByteCapacity())
	assert.InDelta(t, 0.125, v.Utilization(), 1e-9)
}
