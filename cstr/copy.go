package cstr

import (
	"github.com/hupe1980/gocrt/mem"
	"github.com/hupe1980/gocrt/unit"
)

// Copy copies src, terminator included, into dst and returns the index of
// the terminator written to dst (stpcpy). The regions must not overlap.
func Copy[T unit.Unit](dst, src []T) int {
	n := Length(src)
	mem.CopyUnits(dst, src, n+1)
	return n
}

// CopyBounded writes exactly n units to dst (stpncpy): the first n units of
// src, then zeros up to n if src is shorter. dst is not terminated when src
// has n or more units. It returns n.
func CopyBounded[T unit.Unit](dst, src []T, n int) int {
	m := LengthBounded(src, n)
	rest := mem.CopyUnits(dst, src, m)
	mem.FillUnits(rest, 0, n-m)
	return n
}

// Concat appends src, terminator included, to the string in dst and returns
// the index of the new terminator.
func Concat[T unit.Unit](dst, src []T) int {
	d := Length(dst)
	n := Length(src)
	mem.CopyUnits(dst[d:], src, n+1)
	return d + n
}

// ConcatBounded appends at most n units of src to the string in dst, always
// writes a terminator and never pads. It returns the index of the new
// terminator.
func ConcatBounded[T unit.Unit](dst, src []T, n int) int {
	d := Length(dst)
	m := LengthBounded(src, n)
	mem.CopyUnits(dst[d:], src, m)
	dst[d+m] = 0
	return d + m
}
