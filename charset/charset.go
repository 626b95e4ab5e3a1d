// Package charset provides prebuilt character sets for the span and break scans.
//
// Scanning a string against a plain null-terminated set costs one pass over the
// set per unit. A Set answers membership in constant time instead: units below
// 256 live in a 256-bit word bitmap, larger wide units in a roaring bitmap that
// is only allocated when such a unit is present.
//
// Building a Set allocates; querying it never does. A Set is immutable after
// New and safe for concurrent use.
package charset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gocrt/unit"
)

// Set is a membership set of code units. The null unit is never a member.
type Set[T unit.Unit] struct {
	low  [4]uint64
	high *roaring.Bitmap
	n    int
}

// New builds a set from the units of set up to its null terminator, or up to
// the end of the slice when it has none.
func New[T unit.Unit](set []T) *Set[T] {
	s := &Set[T]{}
	for _, c := range set {
		if c == 0 {
			break
		}
		s.add(c)
	}
	return s
}

func (s *Set[T]) add(c T) {
	if s.Contains(c) {
		return
	}
	s.n++
	if uint32(c) < 256 {
		s.low[c>>6] |= 1 << (c & 63)
		return
	}
	if s.high == nil {
		s.high = roaring.New()
	}
	s.high.Add(uint32(c))
}

// Contains reports whether c is in the set.
func (s *Set[T]) Contains(c T) bool {
	if uint32(c) < 256 {
		return s.low[c>>6]&(1<<(c&63)) != 0
	}
	return s.high != nil && s.high.Contains(uint32(c))
}

// Len returns the number of distinct units in the set.
func (s *Set[T]) Len() int {
	return s.n
}
