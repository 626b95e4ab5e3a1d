package cstr

import (
	"unicode/utf16"

	"github.com/hupe1980/gocrt/unit"
)

// From returns s as a terminated string of units.
//
// Narrow units hold the bytes of s unchanged, 16-bit units hold its UTF-16
// encoding and 32-bit units hold its runes.
func From[T unit.Unit](s string) []T {
	switch unit.Size[T]() {
	case 1:
		out := make([]T, len(s)+1)
		for i := 0; i < len(s); i++ {
			out[i] = T(s[i])
		}
		return out
	case 2:
		enc := utf16.Encode([]rune(s))
		out := make([]T, len(enc)+1)
		for i, c := range enc {
			out[i] = T(c)
		}
		return out
	default:
		runes := []rune(s)
		out := make([]T, len(runes)+1)
		for i, r := range runes {
			out[i] = T(r)
		}
		return out
	}
}

// ToString decodes the string in s, the inverse of From. A slice without a
// terminator is decoded in full.
func ToString[T unit.Unit](s []T) string {
	s = s[:LengthBounded(s, len(s))]
	switch unit.Size[T]() {
	case 1:
		b := make([]byte, len(s))
		for i, c := range s {
			b[i] = byte(c)
		}
		return string(b)
	case 2:
		u := make([]uint16, len(s))
		for i, c := range s {
			u[i] = uint16(c)
		}
		return string(utf16.Decode(u))
	default:
		r := make([]rune, len(s))
		for i, c := range s {
			r[i] = rune(c)
		}
		return string(r)
	}
}
