//go:build (amd64 || arm64) && !noasm

package simd

import (
	"bytes"
	"encoding/binary"
)

// newLaneKernels builds a family that steps in width-byte chunks, mirroring the
// register width of the instruction set it stands for. Both targets handle
// unaligned 64-bit loads natively, so chunks need no alignment.
func newLaneKernels(isa ISA, width int) Kernels {
	return Kernels{
		ISA:   isa,
		Width: width,
		Fill: func(dst []byte, b byte) int {
			return fillLanes(dst, b, width)
		},
		Copy: func(dst, src []byte) int {
			return copyLanes(dst, src, width)
		},
		Compare: func(a, b []byte) int {
			return compareLanes(a, b, width)
		},
	}
}

// fillLanes stores one chunk of the pattern, then doubles the initialized
// prefix through memmove until the chunk run is covered.
func fillLanes(dst []byte, b byte, width int) int {
	n := len(dst) &^ (width - 1)
	if n == 0 {
		return 0
	}
	pattern := uint64(b) * lo64
	for i := 0; i < width; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], pattern)
	}
	for filled := width; filled < n; filled *= 2 {
		copy(dst[filled:n], dst[:filled])
	}
	return n
}

func copyLanes(dst, src []byte, width int) int {
	n := min(len(dst), len(src)) &^ (width - 1)
	copy(dst[:n], src[:n])
	return n
}

// compareLanes hands each chunk to the runtime's memequal, which uses the
// platform's vector compare instructions, and stops at the first chunk that
// differs.
func compareLanes(a, b []byte, width int) int {
	n := min(len(a), len(b)) &^ (width - 1)
	for i := 0; i < n; i += width {
		if !bytes.Equal(a[i:i+width], b[i:i+width]) {
			return i
		}
	}
	return n
}
