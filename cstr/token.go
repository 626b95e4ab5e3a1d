package cstr

import (
	"iter"

	"github.com/hupe1980/gocrt/unit"
)

// Cursor is the resume position of a tokenization. The zero value starts at
// the beginning of the string.
type Cursor struct {
	Pos int
}

// Tokenize returns the start index of the next token of s and advances c
// past it (strtok_r).
//
// Leading delimiters are skipped. The delimiter that ends the token is
// overwritten with the terminator and c resumes after it. When only
// delimiters remain, Tokenize returns -1 and leaves c on the terminator, so
// further calls keep returning -1.
func Tokenize[T unit.Unit](s, delims []T, c *Cursor) int {
	start := c.Pos + Span(s[c.Pos:], delims)
	if s[start] == 0 {
		c.Pos = start
		return -1
	}

	end := Break(s[start:], delims)
	if end < 0 {
		c.Pos = start + Length(s[start:])
		return start
	}
	end += start
	s[end] = 0
	c.Pos = end + 1
	return start
}

// Fields returns an iterator over the tokens of s. Each token is yielded
// without its terminator. Iterating mutates s exactly as repeated Tokenize
// calls do.
func Fields[T unit.Unit](s, delims []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var c Cursor
		for {
			start := Tokenize(s, delims, &c)
			if start < 0 {
				return
			}
			if !yield(s[start : start+Length(s[start:])]) {
				return
			}
		}
	}
}
