//go:build noasm || (!amd64 && !arm64)

package simd

// platformKernels returns nothing: only the generic family is compiled in.
func platformKernels() []Kernels {
	return nil
}
