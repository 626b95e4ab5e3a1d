package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents an instruction set family with its own kernel implementation.
type ISA uint8

const (
	// Generic represents the portable implementation (8-byte words).
	Generic ISA = iota
	// SSE2 represents x86-64 SSE2 (128-bit chunks).
	SSE2
	// AVX2 represents x86-64 AVX2 (256-bit chunks).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit chunks).
	AVX512
	// NEON represents ARM64 NEON (128-bit chunks, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 256-bit chunks).
	SVE2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable that forces a kernel family.
const EnvOverride = "GOCRT_SIMD"

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected kernel family.
	activeISA ISA

	// hasOverride is true if GOCRT_SIMD selected the family.
	hasOverride bool

	// registry holds every kernel family compiled in and usable on this CPU,
	// narrowest first.
	registry []Kernels

	// CPU feature flags (set by platform-specific init)
	hasSSE2     bool // x86-64 SSE2
	hasAVX2     bool // x86-64 AVX2
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	registry = append([]Kernels{genericKernels()}, platformKernels()...)

	// Check for environment override
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activate(isa)
			return
		}
		// Invalid override - fall through to auto-detection
	}

	activate(selectBestISA())
}

// isISAAvailable checks if a kernel family for isa is compiled in and usable.
func isISAAvailable(isa ISA) bool {
	_, ok := KernelsFor(isa)
	return ok
}

// selectBestISA chooses the widest family for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		return selectBestARM64()
	case "amd64":
		return selectBestAMD64()
	default:
		return Generic
	}
}

// selectBestARM64 selects the best ISA for ARM64.
func selectBestARM64() ISA {
	// On macOS (Apple Silicon) NEON is the native width. On Linux ARM servers
	// (Graviton, Ampere) SVE2 is native.
	preferNEON := runtime.GOOS == "darwin"

	if !preferNEON && isISAAvailable(SVE2) {
		return SVE2
	}
	if isISAAvailable(NEON) {
		return NEON
	}
	return Generic
}

// selectBestAMD64 selects the best ISA for AMD64.
func selectBestAMD64() ISA {
	for _, isa := range []ISA{AVX512, AVX2, SSE2} {
		if isISAAvailable(isa) {
			return isa
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if GOCRT_SIMD selected the active family.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE2 returns true if x86-64 SSE2 is available.
func HasSSE2() bool {
	return hasSSE2
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasSVE2 returns true if ARM64 SVE2 is available.
func HasSVE2() bool {
	return hasSVE2
}
