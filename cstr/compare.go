package cstr

import (
	"github.com/hupe1980/gocrt/ctype"
	"github.com/hupe1980/gocrt/unit"
)

// Compare compares two strings unit by unit.
// It returns the difference of the first differing pair (see unit.Diff),
// which is the terminator of the shorter string when one is a prefix of the
// other.
func Compare[T unit.Unit](a, b []T) int {
	for i := 0; ; i++ {
		if ca, cb := a[i], b[i]; ca != cb || ca == 0 {
			return unit.Diff(ca, cb)
		}
	}
}

// CompareBounded compares at most the first n units of two strings.
func CompareBounded[T unit.Unit](a, b []T, n int) int {
	for i := 0; i < n; i++ {
		ca, cb := a[i], b[i]
		if ca != cb {
			return unit.Diff(ca, cb)
		}
		if ca == 0 {
			break
		}
	}
	return 0
}

// CompareInsensitive compares two strings after folding both units of every
// pair to lowercase. The result is the difference of the folded pair.
func CompareInsensitive[T unit.Unit](a, b []T) int {
	for i := 0; ; i++ {
		ca, cb := ctype.ToLower(a[i]), ctype.ToLower(b[i])
		if ca != cb || ca == 0 {
			return unit.Diff(ca, cb)
		}
	}
}

// CompareInsensitiveBounded is CompareInsensitive limited to n units.
func CompareInsensitiveBounded[T unit.Unit](a, b []T, n int) int {
	for i := 0; i < n; i++ {
		ca, cb := ctype.ToLower(a[i]), ctype.ToLower(b[i])
		if ca != cb {
			return unit.Diff(ca, cb)
		}
		if ca == 0 {
			break
		}
	}
	return 0
}
