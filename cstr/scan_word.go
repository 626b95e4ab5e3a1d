//go:build !purego

package cstr

import (
	"encoding/binary"

	"github.com/hupe1980/gocrt/internal/conv"
	"github.com/hupe1980/gocrt/unit"
)

// Lane masks for the zero-unit test: (w - lo) & ^w & hi is non-zero iff
// some lane of w is zero. False positives only occur above a real zero lane.
const (
	lo8  = 0x01010101
	hi8  = 0x80808080
	lo16 = 0x00010001
	hi16 = 0x80008000
)

// scanLength returns the index of the first zero unit in s[:limit], or limit.
func scanLength[T unit.Unit](s []T, limit int) int {
	size := unit.Size[T]()
	if size == 4 || limit == 0 {
		// One unit per word: the word test degenerates to the scalar loop.
		return scanScalar(s, 0, limit)
	}

	// Get up to 4-byte alignment.
	i := 0
	for addr := conv.Addr(s); i < limit && (addr+uintptr(i*size))&3 != 0; i++ {
		if s[i] == 0 {
			return i
		}
	}

	lo, hi := uint32(lo8), uint32(hi8)
	if size == 2 {
		lo, hi = lo16, hi16
	}
	per := 4 / size
	b := conv.AsBytes(s[:limit])
	for i+per <= limit {
		w := binary.NativeEndian.Uint32(b[i*size:])
		if (w-lo)&^w&hi != 0 {
			break
		}
		i += per
	}

	// Exact position inside the flagged word, or the tail.
	return scanScalar(s, i, limit)
}
