package align

import (
	"unsafe"

	"github.com/hupe1980/gocrt/unit"
)

// Alignment is the widest chunk a kernel family uses (AVX-512, 64 bytes).
const Alignment = 64

// Bytes allocates a byte slice of the given size starting at a 64-byte
// boundary.
//
// Note: This function allocates Alignment extra bytes to find the boundary.
// The underlying array is kept alive by the returned slice.
func Bytes(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))
	return buf[offset : offset+size]
}

// Units allocates n units whose first element starts at a 64-byte boundary.
func Units[T unit.Unit](n int) []T {
	return At[T](n, 0)
}

// At allocates n units whose first element lies offset units past a 64-byte
// boundary. The offset is taken modulo the units per boundary.
func At[T unit.Unit](n, offset int) []T {
	if n <= 0 {
		return nil
	}
	size := unit.Size[T]()
	offset %= Alignment / size

	b := Bytes((offset + n) * size)
	all := unsafe.Slice((*T)(unsafe.Pointer(&b[0])), offset+n) //nolint:gosec // 64-byte aligned backing
	return all[offset:]
}

// Offset returns the distance in bytes of s from the previous 64-byte
// boundary, or 0 for an empty slice.
func Offset[T unit.Unit](s []T) int {
	if len(s) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(&s[0])) & (Alignment - 1)) //nolint:gosec // address inspection only
}
