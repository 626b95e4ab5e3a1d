//go:build amd64 && !noasm

package simd

// platformKernels returns the lane families this CPU supports.
func platformKernels() []Kernels {
	var out []Kernels
	if hasSSE2 {
		out = append(out, newLaneKernels(SSE2, 16))
	}
	if hasAVX2 {
		out = append(out, newLaneKernels(AVX2, 32))
	}
	// AVX-512 requires both Foundation and BW for byte-granular chunks
	if hasAVX512F && hasAVX512BW {
		out = append(out, newLaneKernels(AVX512, 64))
	}
	return out
}
