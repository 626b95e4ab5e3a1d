package cstr

import (
	"testing"

	"github.com/hupe1980/gocrt/unit"
)

// widths runs fn once per code unit width.
func widths(t *testing.T, narrow, wide16, wide32 func(*testing.T)) {
	t.Helper()
	t.Run("narrow", narrow)
	t.Run("wide16", wide16)
	t.Run("wide32", wide32)
}

// fillers returns non-zero unit values that stress the word strategy: values
// with zero bytes inside a wide unit and values with the high bit set.
func fillers[T unit.Unit]() []T {
	vals := []uint32{'a', 0x01, 0x7F, 0x80, 0xFF}
	if unit.Size[T]() > 1 {
		vals = append(vals, 0x100, 0x8000, 0xFF00, 0x0101)
	}
	if unit.Size[T]() > 2 {
		vals = append(vals, 0x10000, 0x1F600)
	}
	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = T(v)
	}
	return out
}
