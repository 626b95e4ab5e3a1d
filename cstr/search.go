package cstr

import (
	"github.com/hupe1980/gocrt/ctype"
	"github.com/hupe1980/gocrt/mem"
	"github.com/hupe1980/gocrt/unit"
)

// IndexChar returns the index of the first c in s, or -1.
// The terminator is part of the search: IndexChar(s, 0) returns Length(s).
func IndexChar[T unit.Unit](s []T, c T) int {
	n := Length(s)
	return mem.IndexUnit(s, c, n+1)
}

// LastIndexChar returns the index of the last c in s, or -1 when c does not
// occur (strrchr). It does not fall back to the terminator for an absent
// unit; only LastIndexChar(s, 0) returns Length(s).
func LastIndexChar[T unit.Unit](s []T, c T) int {
	n := Length(s)
	if c == 0 {
		return n
	}
	for i := n - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of needle in s, or -1.
// An empty needle matches at 0.
func Index[T unit.Unit](s, needle []T) int {
	return index(s, needle, -1, identity[T])
}

// IndexBounded is Index restricted to the first n units of s: a match must
// end within them.
func IndexBounded[T unit.Unit](s, needle []T, n int) int {
	return index(s, needle, n, identity[T])
}

// IndexInsensitive is Index with both strings folded to lowercase.
func IndexInsensitive[T unit.Unit](s, needle []T) int {
	return index(s, needle, -1, ctype.ToLower[T])
}

func identity[T unit.Unit](c T) T { return c }

// index scans every start position naively. limit < 0 means unbounded.
func index[T unit.Unit](s, needle []T, limit int, fold func(T) T) int {
	if needle[0] == 0 {
		return 0
	}
	for start := 0; (limit < 0 || start < limit) && s[start] != 0; start++ {
		i := 0
		for needle[i] != 0 && (limit < 0 || start+i < limit) && fold(s[start+i]) == fold(needle[i]) {
			i++
		}
		if needle[i] == 0 {
			return start
		}
	}
	return -1
}
