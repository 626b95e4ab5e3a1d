// Package simd provides the bulk kernels behind the byte-buffer primitives.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (64-byte chunks), AVX2 (32-byte chunks), SSE2 (16-byte chunks)
//   - ARM64: SVE2 (32-byte chunks), NEON (16-byte chunks)
//   - everything else: generic 8-byte words
//
// CPU feature detection at package init selects one kernel family; the choice never
// changes afterwards and no call branches on it. Set GOCRT_SIMD to force a family
// that the CPU supports. Build with -tags noasm to compile only the generic family.
//
// # Kernels
//
// A kernel handles whole chunks only and reports how many bytes it processed.
// The generic family works in 8-byte words through encoding/binary. The lane
// families hand their work to the runtime's vectorized routines: Fill and Copy
// pass the whole chunk run to memmove, Compare passes one chunk at a time to
// memequal and stops before the first chunk that differs. The families differ
// in the chunk width, which matches the register width of the instruction set.
// Callers finish the remainder with word and byte steps.
package simd
