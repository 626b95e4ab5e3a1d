package selfcheck

import "github.com/hupe1980/gocrt/internal/simd"

// Capabilities describes the kernel selection made at init.
type Capabilities struct {
	Active     simd.ISA
	Overridden bool
	ChunkWidth int
	Available  []simd.ISA
	Features   map[string]bool
}

// Detect reports the kernel selection of the running process.
func Detect() Capabilities {
	ks := simd.Available()
	isas := make([]simd.ISA, len(ks))
	for i, k := range ks {
		isas[i] = k.ISA
	}
	return Capabilities{
		Active:     simd.ActiveISA(),
		Overridden: simd.IsOverridden(),
		ChunkWidth: simd.ChunkWidth(),
		Available:  isas,
		Features: map[string]bool{
			"sse2":   simd.HasSSE2(),
			"avx2":   simd.HasAVX2(),
			"avx512": simd.HasAVX512(),
			"asimd":  simd.HasASIMD(),
			"sve2":   simd.HasSVE2(),
		},
	}
}
