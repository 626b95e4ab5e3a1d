package mem

import (
	"encoding/binary"
	"math/bits"

	"github.com/hupe1980/gocrt/internal/conv"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// IndexByte returns the index of the first value in the first n bytes of buf,
// or -1 if it is not present.
func IndexByte(buf []byte, value byte, n int) int {
	buf = conv.Take(buf, n)

	i := 0
	if n >= 8 {
		// Broadcast value to all 8 lanes; matching lanes XOR to zero.
		mask := uint64(value) * lo8
		for ; i+8 <= n; i += 8 {
			x := binary.LittleEndian.Uint64(buf[i:]) ^ mask
			if z := (x - lo8) & ^x & hi8; z != 0 {
				// Borrows only travel upward, so the lowest flagged lane is exact.
				return i + bits.TrailingZeros64(z)/8
			}
		}
	}
	for ; i < n; i++ {
		if buf[i] == value {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of needle in source, or -1.
//
// An empty needle, or one longer than source, is never found. This differs
// from bytes.Index and from the string search in package cstr.
func Index(source, needle []byte) int {
	m := len(needle)
	if m == 0 || m > len(source) {
		return -1
	}

	last := len(source) - m
	for i := 0; i <= last; i++ {
		j := IndexByte(source[i:], needle[0], last-i+1)
		if j < 0 {
			return -1
		}
		i += j
		if Compare(source[i:], needle, m) == 0 {
			return i
		}
	}
	return -1
}
