package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type label uint16

func TestSize(t *testing.T) {
	assert.Equal(t, 1, Size[Narrow]())
	assert.Equal(t, 2, Size[Wide16]())
	assert.Equal(t, 4, Size[Wide32]())
	assert.Equal(t, 2, Size[label]())
}

func TestDiff(t *testing.T) {
	assert.Equal(t, int('a')-int('b'), Diff[Narrow]('a', 'b'))
	assert.Equal(t, 0x4E2D-0x41, Diff[Wide16](0x4E2D, 0x41))
	assert.Zero(t, Diff[Wide32](7, 7))
	assert.Positive(t, Diff[Wide32](0x80000001, 1))
	assert.Negative(t, Diff[Wide32](1, 0xFFFFFFFF))
}

func TestDiffNarrowInt(t *testing.T) {
	tests := []struct {
		name string
		a, b Wide32
		want int
	}{
		{"high bit above", 0x80000001, 1, 1},
		{"high bit below", 1, 0x80000001, -1},
		{"extremes", 0xFFFFFFFF, 0, 1},
		{"equal", 0x80000000, 0x80000000, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, diff(tc.a, tc.b, 32))
		})
	}

	// Narrower units keep the exact difference on 32-bit ints.
	assert.Equal(t, 0xFFFF, diff[Wide16](0xFFFF, 0, 32))
	assert.Equal(t, -0xFF, diff[Narrow](0, 0xFF, 32))
}
