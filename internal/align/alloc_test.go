package align

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gocrt/unit"
)

func TestBytes(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := Bytes(size)
		assert.Len(t, buf, size)
		assert.Zero(t, Offset(buf), "size %d", size)
	}

	assert.Nil(t, Bytes(0))
	assert.Nil(t, Bytes(-1))
}

func TestAt(t *testing.T) {
	t.Run("narrow", testAt[uint8])
	t.Run("wide16", testAt[uint16])
	t.Run("wide32", testAt[uint32])
}

func testAt[T unit.Unit](t *testing.T) {
	size := unit.Size[T]()
	for off := 0; off < 16; off++ {
		s := At[T](33, off)
		require.Len(t, s, 33)
		assert.Equal(t, (off*size)%Alignment, Offset(s), "offset %d", off)

		// The whole slice is writable.
		for i := range s {
			s[i] = T(i + 1)
		}
	}
	assert.Nil(t, At[T](0, 3))
	assert.Zero(t, Offset(Units[T](5)))
}

func BenchmarkBytes(b *testing.B) {
	for _, size := range []int{64, 1024, 4096} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			for b.Loop() {
				_ = Bytes(size)
			}
		})
	}
}
