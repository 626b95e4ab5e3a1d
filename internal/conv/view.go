package conv

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/gocrt/unit"
)

// AsBytes returns the bytes backing s. The result aliases s.
func AsBytes[T unit.Unit](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*unit.Size[T]()) //nolint:gosec // view over caller memory
}

// Addr returns the address of the first element of s, or 0 for an empty slice.
func Addr[T unit.Unit](s []T) uintptr {
	if cap(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s))) //nolint:gosec // address comparison only
}

// Take returns s[:n] after checking n against len(s), not cap(s).
// It is the single bounds assertion made at the entry of a primitive.
func Take[T any](s []T, n int) []T {
	if uint(n) > uint(len(s)) {
		panic(fmt.Sprintf("gocrt: length %d out of range [0:%d]", n, len(s)))
	}
	return s[:n]
}
