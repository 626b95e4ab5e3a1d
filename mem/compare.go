package mem

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"

	"github.com/hupe1980/gocrt/internal/conv"
	"github.com/hupe1980/gocrt/internal/simd"
)

// Compare compares the first n bytes of a and b as unsigned values.
//
// It returns the difference of the first mismatching byte pair, a[i]-b[i],
// or 0 when all n bytes are equal (including n == 0).
func Compare(a, b []byte, n int) int {
	a, b = conv.Take(a, n), conv.Take(b, n)

	i := simd.CompareChunks(a, b)
	for ; i+8 <= n; i += 8 {
		if x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:]); x != 0 {
			// The lowest set bit belongs to the first differing byte.
			j := i + bits.TrailingZeros64(x)/8
			return int(a[j]) - int(b[j])
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

// EqualConstantTime reports whether the first n bytes of a and b are equal.
// The time taken depends on n only, never on the contents.
func EqualConstantTime(a, b []byte, n int) bool {
	a, b = conv.Take(a, n), conv.Take(b, n)
	return subtle.ConstantTimeCompare(a, b) == 1
}
