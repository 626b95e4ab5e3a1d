package simd

import "encoding/binary"

// lo64 replicates a byte into every lane of a uint64.
const lo64 = 0x0101010101010101

// wordSize is the chunk width of the generic family.
const wordSize = 8

func genericKernels() Kernels {
	return Kernels{
		ISA:     Generic,
		Width:   wordSize,
		Fill:    fillGeneric,
		Copy:    copyGeneric,
		Compare: compareGeneric,
	}
}

func fillGeneric(dst []byte, b byte) int {
	n := len(dst) &^ (wordSize - 1)
	pattern := uint64(b) * lo64

	i := 0
	// Process 4 words at a time (unrolled)
	for ; i+4*wordSize <= n; i += 4 * wordSize {
		binary.LittleEndian.PutUint64(dst[i:], pattern)
		binary.LittleEndian.PutUint64(dst[i+8:], pattern)
		binary.LittleEndian.PutUint64(dst[i+16:], pattern)
		binary.LittleEndian.PutUint64(dst[i+24:], pattern)
	}
	for ; i < n; i += wordSize {
		binary.LittleEndian.PutUint64(dst[i:], pattern)
	}
	return n
}

func copyGeneric(dst, src []byte) int {
	n := min(len(dst), len(src)) &^ (wordSize - 1)
	for i := 0; i < n; i += wordSize {
		binary.LittleEndian.PutUint64(dst[i:], binary.LittleEndian.Uint64(src[i:]))
	}
	return n
}

func compareGeneric(a, b []byte) int {
	n := min(len(a), len(b)) &^ (wordSize - 1)
	for i := 0; i < n; i += wordSize {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			return i
		}
	}
	return n
}
