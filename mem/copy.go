package mem

import (
	"encoding/binary"
	"runtime"

	"github.com/hupe1980/gocrt/internal/conv"
	"github.com/hupe1980/gocrt/internal/simd"
)

// Fill sets the first n bytes of dst to b and returns dst[n:].
//
// Chunks are written by the active kernel, the rest by 8-byte words and
// single bytes. The order of the writes is unspecified.
func Fill(dst []byte, b byte, n int) []byte {
	d := conv.Take(dst, n)

	i := simd.FillChunks(d, b)
	if n-i >= 8 {
		pattern := uint64(b) * lo8
		for ; i+8 <= n; i += 8 {
			binary.LittleEndian.PutUint64(d[i:], pattern)
		}
	}
	for ; i < n; i++ {
		d[i] = b
	}
	return dst[n:]
}

// Copy copies the first n bytes of src into dst and returns dst[n:].
//
// The regions must not overlap. Overlapping input never faults but leaves
// unspecified contents in dst; use Move for aliasing buffers.
func Copy(dst, src []byte, n int) []byte {
	copyForward(conv.Take(dst, n), conv.Take(src, n))
	return dst[n:]
}

// Move copies the first n bytes of src into dst and returns dst[:n].
// The result is correct for any overlap between the regions.
func Move(dst, src []byte, n int) []byte {
	d, s := conv.Take(dst, n), conv.Take(src, n)
	if n == 0 {
		return d
	}

	da, sa := conv.Addr(d), conv.Addr(s)
	if da <= sa || da >= sa+uintptr(n) {
		// dst starts before src, or the regions are disjoint.
		copyForward(d, s)
	} else {
		copyBackward(d, s)
	}
	return d
}

// copyForward copies low to high. Every step reads its whole chunk or word
// before writing it, which keeps it correct when d starts before s.
func copyForward(d, s []byte) {
	n := len(d)
	i := simd.CopyChunks(d, s)
	for ; i+8 <= n; i += 8 {
		binary.LittleEndian.PutUint64(d[i:], binary.LittleEndian.Uint64(s[i:]))
	}
	for ; i < n; i++ {
		d[i] = s[i]
	}
}

// copyBackward copies high to low for a destination that overlaps the end of
// the source.
func copyBackward(d, s []byte) {
	i := len(d)
	for ; i >= 8; i -= 8 {
		binary.LittleEndian.PutUint64(d[i-8:], binary.LittleEndian.Uint64(s[i-8:]))
	}
	for i > 0 {
		i--
		d[i] = s[i]
	}
}

// Wipe zeroes dst. The stores are kept even when dst is not read afterwards.
func Wipe(dst []byte) {
	Fill(dst, 0, len(dst))
	runtime.KeepAlive(dst)
}
