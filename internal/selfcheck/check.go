package selfcheck

import (
	"bytes"
	"context"
	"time"

	"github.com/hupe1980/gocrt/cstr"
	"github.com/hupe1980/gocrt/internal/align"
	"github.com/hupe1980/gocrt/internal/simd"
	"github.com/hupe1980/gocrt/mem"
	"github.com/hupe1980/gocrt/unit"
)

const (
	fillByte  = 0x5C
	guardByte = 0xAA
)

// Report summarizes a successful Run.
type Report struct {
	Capabilities Capabilities
	Families     []simd.ISA
	Checks       int
	Duration     time.Duration
}

// Run verifies every selected kernel family against scalar references for
// all sizes up to the configured maximum at alignment offsets 0..15. It then
// checks the overlap handling of mem.Move and the string length scan of the
// active build.
//
// The first disagreement is returned as a *MismatchError.
func Run(ctx context.Context, opts ...Option) (Report, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	report := Report{Capabilities: Detect()}
	o.logger.LogCapabilities(ctx, report.Capabilities)

	for _, k := range o.kernels {
		familyStart := time.Now()
		checks, err := checkFamily(ctx, k, o.maxSize)
		o.recorder.RecordCheck(k.ISA, checks, time.Since(familyStart), err)
		o.logger.WithISA(k.ISA).WithOp("kernels").LogCheck(ctx, checks, err)
		report.Checks += checks
		if err != nil {
			return report, err
		}
		report.Families = append(report.Families, k.ISA)
	}

	logger := o.logger.WithISA(simd.ActiveISA())
	for _, c := range pathChecks {
		checks, err := c.run(ctx, o.maxSize)
		report.Checks += checks
		logger.WithOp(c.op).LogCheck(ctx, checks, err)
		if err != nil {
			return report, err
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

// pathChecks verify the public paths of the active build.
var pathChecks = []struct {
	op  string
	run func(context.Context, int) (int, error)
}{
	{"move", checkMove},
	{"length/narrow", checkLength[uint8]},
	{"length/wide16", checkLength[uint16]},
}

func checkFamily(ctx context.Context, k simd.Kernels, maxSize int) (int, error) {
	checks := 0
	for size := 0; size <= maxSize; size++ {
		if err := ctx.Err(); err != nil {
			return checks, err
		}
		for off := 0; off < MaxOffset; off++ {
			for _, check := range []func(simd.Kernels, int, int) error{checkFill, checkCopy, checkCompare} {
				checks++
				if err := check(k, size, off); err != nil {
					return checks, err
				}
			}
		}
	}
	return checks, nil
}

// chunked returns the number of bytes a kernel of width w must handle for a
// buffer of size bytes.
func chunked(size, w int) int {
	return size &^ (w - 1)
}

func pattern(b []byte, seed int) {
	for i := range b {
		b[i] = byte(i*7 + seed + 1)
	}
}

func checkFill(k simd.Kernels, size, off int) error {
	dst := align.At[byte](size, off)
	for i := range dst {
		dst[i] = guardByte
	}

	n := k.Fill(dst, fillByte)
	if want := chunked(size, k.Width); n != want {
		return &MismatchError{Op: "fill count", ISA: k.ISA, Size: size, Offset: off, Want: want, Got: n}
	}
	for i, b := range dst {
		want := byte(guardByte)
		if i < n {
			want = fillByte
		}
		if b != want {
			return &MismatchError{Op: "fill", ISA: k.ISA, Size: size, Offset: off, Want: int(want), Got: int(b)}
		}
	}
	return nil
}

func checkCopy(k simd.Kernels, size, off int) error {
	src := align.At[byte](size, off)
	pattern(src, off)
	dst := align.At[byte](size, (off*3+1)%MaxOffset)
	for i := range dst {
		dst[i] = guardByte
	}

	n := k.Copy(dst, src)
	if want := chunked(size, k.Width); n != want {
		return &MismatchError{Op: "copy count", ISA: k.ISA, Size: size, Offset: off, Want: want, Got: n}
	}
	for i := range dst {
		want := byte(guardByte)
		if i < n {
			want = src[i]
		}
		if dst[i] != want {
			return &MismatchError{Op: "copy", ISA: k.ISA, Size: size, Offset: off, Want: int(want), Got: int(dst[i])}
		}
	}
	return nil
}

func checkCompare(k simd.Kernels, size, off int) error {
	a := align.At[byte](size, off)
	pattern(a, off)
	b := align.At[byte](size, MaxOffset-1-off)
	copy(b, a)

	if n, want := k.Compare(a, b), chunked(size, k.Width); n != want {
		return &MismatchError{Op: "compare equal", ISA: k.ISA, Size: size, Offset: off, Want: want, Got: n}
	}
	if size == 0 {
		return nil
	}

	p := (size * off) / MaxOffset
	b[p] ^= 0xFF
	want := chunked(p, k.Width)
	if n := k.Compare(a, b); n != want {
		return &MismatchError{Op: "compare differ", ISA: k.ISA, Size: size, Offset: off, Want: want, Got: n}
	}
	return nil
}

// checkMove moves every size between overlapping views of one buffer, shifted
// both ways, and compares with a copy staged through a scratch buffer.
func checkMove(ctx context.Context, maxSize int) (int, error) {
	checks := 0
	for size := 0; size <= maxSize; size++ {
		if err := ctx.Err(); err != nil {
			return checks, err
		}
		for shift := 1; shift < MaxOffset; shift++ {
			for _, forward := range []bool{true, false} {
				checks++
				buf := align.Bytes(size + shift + 1)
				pattern(buf, shift)
				want := append([]byte(nil), buf...)

				dst, src := shift, 0
				if forward {
					dst, src = 0, shift
				}
				copy(want[dst:dst+size], append([]byte(nil), buf[src:src+size]...))
				mem.Move(buf[dst:], buf[src:], size)

				if i := firstDiff(buf, want); i >= 0 {
					return checks, &MismatchError{Op: "move", ISA: simd.ActiveISA(), Size: size, Offset: shift, Want: int(want[i]), Got: int(buf[i])}
				}
			}
		}
	}
	return checks, nil
}

// checkLength places a terminator after every length at every alignment.
func checkLength[T unit.Unit](ctx context.Context, maxSize int) (int, error) {
	checks := 0
	for k := 0; k <= maxSize; k++ {
		if err := ctx.Err(); err != nil {
			return checks, err
		}
		for off := 0; off < MaxOffset; off++ {
			checks++
			s := align.At[T](k+1, off)
			for i := 0; i < k; i++ {
				s[i] = T(0x80 + i%0x7F)
			}
			s[k] = 0
			if got := cstr.Length(s); got != k {
				return checks, &MismatchError{Op: "length", ISA: simd.ActiveISA(), Size: k, Offset: off, Want: k, Got: got}
			}
		}
	}
	return checks, nil
}

func firstDiff(a, b []byte) int {
	if bytes.Equal(a, b) {
		return -1
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return len(a)
}
