package simd

// Kernels is the bulk-step capability of one instruction set family.
//
// Every function processes whole Width-byte chunks from the start of its
// arguments and returns the number of bytes it handled, always a multiple
// of Width and never more than the shortest argument. Each chunk is read
// completely before it is written, so copying forward is safe whenever the
// destination starts at or before the source.
type Kernels struct {
	// ISA identifies the family.
	ISA ISA
	// Width is the chunk size in bytes (a power of two, at least 8).
	Width int
	// Fill sets whole chunks of dst to b.
	Fill func(dst []byte, b byte) int
	// Copy copies whole chunks of src into dst.
	Copy func(dst, src []byte) int
	// Compare returns the length of the chunk-aligned prefix on which a and b
	// are proven equal. It stops before the first chunk that differs.
	Compare func(a, b []byte) int
}

// active is the family selected at init.
var active = genericKernels()

func activate(isa ISA) {
	k, ok := KernelsFor(isa)
	if !ok {
		k = genericKernels()
	}
	active = k
	activeISA = k.ISA
}

// Active returns the selected kernel family.
func Active() Kernels {
	return active
}

// Available returns every kernel family usable on this CPU, narrowest first.
// The generic family is always present.
func Available() []Kernels {
	out := make([]Kernels, len(registry))
	copy(out, registry)
	return out
}

// KernelsFor returns the family for isa if it is compiled in and supported.
func KernelsFor(isa ISA) (Kernels, bool) {
	for _, k := range registry {
		if k.ISA == isa {
			return k, true
		}
	}
	return Kernels{}, false
}

// ChunkWidth returns the chunk size of the active family.
func ChunkWidth() int {
	return active.Width
}

// FillChunks sets the chunk-aligned prefix of dst to b.
func FillChunks(dst []byte, b byte) int {
	return active.Fill(dst, b)
}

// CopyChunks copies the chunk-aligned prefix of src into dst.
//
// SAFETY: Assumes len(dst) == len(src). Caller MUST ensure lengths match.
func CopyChunks(dst, src []byte) int {
	return active.Copy(dst, src)
}

// CompareChunks returns the length of the chunk-aligned prefix on which a
// and b are equal.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func CompareChunks(a, b []byte) int {
	return active.Compare(a, b)
}
