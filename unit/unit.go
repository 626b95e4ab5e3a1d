// Package unit defines the character code units the string primitives operate on.
//
// A narrow string is a sequence of bytes; a wide string is a sequence of fixed-width
// 16-bit (UTF-16, Windows wchar_t) or 32-bit (UTF-32, Unix wchar_t) code units.
// Every generic routine in this module behaves identically across widths apart from
// the unit size.
package unit

import (
	"math/bits"
	"unsafe"
)

// Unit is the set of supported code unit types.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

type (
	// Narrow is a single-byte code unit.
	Narrow = uint8
	// Wide16 is a 16-bit wide code unit.
	Wide16 = uint16
	// Wide32 is a 32-bit wide code unit.
	Wide32 = uint32
)

// Size returns the width of T in bytes.
func Size[T Unit]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Diff returns a value with the sign of a - b. It is the exact difference
// unless that overflows int, which only happens for 32-bit units on 32-bit
// targets; there it returns -1, 0 or 1.
func Diff[T Unit](a, b T) int {
	return diff(a, b, bits.UintSize)
}

func diff[T Unit](a, b T, intBits int) int {
	if Size[T]() == 4 && intBits == 32 {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return int(a) - int(b)
}
