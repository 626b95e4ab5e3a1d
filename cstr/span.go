package cstr

import (
	"github.com/hupe1980/gocrt/charset"
	"github.com/hupe1980/gocrt/unit"
)

// Span returns the index of the first unit of s that is not in set, or
// Length(s) when every unit is.
func Span[T unit.Unit](s, set []T) int {
	i := 0
	for s[i] != 0 && inSet(set, s[i]) {
		i++
	}
	return i
}

// Break returns the index of the first unit of s that is in set, or -1.
func Break[T unit.Unit](s, set []T) int {
	for i := 0; s[i] != 0; i++ {
		if inSet(set, s[i]) {
			return i
		}
	}
	return -1
}

// SpanSet is Span against a prebuilt set.
func SpanSet[T unit.Unit](s []T, set *charset.Set[T]) int {
	i := 0
	for s[i] != 0 && set.Contains(s[i]) {
		i++
	}
	return i
}

// BreakSet is Break against a prebuilt set.
func BreakSet[T unit.Unit](s []T, set *charset.Set[T]) int {
	for i := 0; s[i] != 0; i++ {
		if set.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// inSet reports whether c occurs in the null-terminated set. The terminator
// itself never matches.
func inSet[T unit.Unit](set []T, c T) bool {
	for j := 0; set[j] != 0; j++ {
		if set[j] == c {
			return true
		}
	}
	return false
}
