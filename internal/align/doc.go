// Package align allocates buffers at chosen offsets from a 64-byte boundary.
package align
