package cstr

import (
	"github.com/hupe1980/gocrt/internal/conv"
	"github.com/hupe1980/gocrt/unit"
)

// Length returns the number of units before the terminator of s.
// It panics if s has no terminator.
func Length[T unit.Unit](s []T) int {
	n := scanLength(s, len(s))
	if n == len(s) {
		panic("cstr: missing terminator")
	}
	return n
}

// LengthBounded returns the number of units before the terminator of s, or
// maxLen if none of the first maxLen units is the terminator.
//
// Reads stay inside s: a slice shorter than maxLen without a terminator
// reports len(s).
func LengthBounded[T unit.Unit](s []T, maxLen int) int {
	return scanLength(s, len(conv.Take(s, min(maxLen, len(s)))))
}

// scanScalar returns the index of the first zero unit in s[i:limit], or limit.
func scanScalar[T unit.Unit](s []T, i, limit int) int {
	for i < limit && s[i] != 0 {
		i++
	}
	return i
}
