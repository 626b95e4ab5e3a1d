package mem

import (
	"github.com/hupe1980/gocrt/internal/conv"
	"github.com/hupe1980/gocrt/internal/simd"
	"github.com/hupe1980/gocrt/unit"
)

// CompareUnits compares the first n units of a and b (wmemcmp).
// It returns the difference of the first mismatching pair, or 0.
func CompareUnits[T unit.Unit](a, b []T, n int) int {
	a, b = conv.Take(a, n), conv.Take(b, n)
	if n == 0 {
		return 0
	}

	// Chunk widths are multiples of every unit size, so the equal prefix
	// always ends on a unit boundary.
	i := simd.CompareChunks(conv.AsBytes(a), conv.AsBytes(b)) / unit.Size[T]()
	for ; i < n; i++ {
		if a[i] != b[i] {
			return unit.Diff(a[i], b[i])
		}
	}
	return 0
}

// IndexUnit returns the index of the first v in the first n units of buf, or -1.
func IndexUnit[T unit.Unit](buf []T, v T, n int) int {
	buf = conv.Take(buf, n)
	if unit.Size[T]() == 1 {
		return IndexByte(conv.AsBytes(buf), byte(v), n)
	}
	for i, c := range buf {
		if c == v {
			return i
		}
	}
	return -1
}

// FillUnits sets the first n units of dst to v and returns dst[n:].
func FillUnits[T unit.Unit](dst []T, v T, n int) []T {
	d := conv.Take(dst, n)
	if n == 0 {
		return dst
	}
	if unit.Size[T]() == 1 {
		Fill(conv.AsBytes(d), byte(v), n)
		return dst[n:]
	}

	// Double the initialized prefix; each step is a single bulk move.
	d[0] = v
	for filled := 1; filled < n; filled *= 2 {
		copy(d[filled:], d[:filled])
	}
	return dst[n:]
}

// CopyUnits copies the first n units of src into dst and returns dst[n:].
// The regions must not overlap.
func CopyUnits[T unit.Unit](dst, src []T, n int) []T {
	d, s := conv.Take(dst, n), conv.Take(src, n)
	bytes := n * unit.Size[T]()
	Copy(conv.AsBytes(d), conv.AsBytes(s), bytes)
	return dst[n:]
}

// MoveUnits copies the first n units of src into dst, allowing overlap,
// and returns dst[:n].
func MoveUnits[T unit.Unit](dst, src []T, n int) []T {
	d, s := conv.Take(dst, n), conv.Take(src, n)
	bytes := n * unit.Size[T]()
	Move(conv.AsBytes(d), conv.AsBytes(s), bytes)
	return d
}
