//go:build arm64 && !noasm

package simd

// platformKernels returns the lane families this CPU supports.
func platformKernels() []Kernels {
	var out []Kernels
	if hasASIMD {
		out = append(out, newLaneKernels(NEON, 16))
	}
	if hasSVE2 {
		out = append(out, newLaneKernels(SVE2, 32))
	}
	return out
}
