// Package mem provides byte-buffer primitives with the exact semantics of the
// C memory routines: memcmp, memchr, memmem, mempset, mempcpy and memmove.
//
// Every operation takes caller-owned slices and an explicit count. The count is
// checked against the slice lengths once on entry; an out-of-range count panics,
// which is how this package surfaces what C leaves undefined. Nothing here
// allocates.
//
// # Bulk Strategy
//
// Fill, Copy and Compare first run the chunk kernel selected by internal/simd
// (16 to 64 bytes per step depending on the CPU), then 8-byte words, then single
// bytes. The kernel only ever handles a prefix, so the final scalar steps decide
// every returned value.
//
// # Conventions
//
// Positions are indices into the caller's slice and "not found" is -1. Functions
// that return an advanced cursor return the tail of the destination, so calls
// chain:
//
//	out := buf
//	out = mem.Copy(out, header, len(header))
//	out = mem.Copy(out, body, len(body))
//
// Index follows memmem: an empty needle is never found. The string package uses
// the opposite convention for its substring search; both are intentional.
package mem
