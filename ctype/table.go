package ctype

import "strings"

// Class is a bitmask of character categories.
type Class uint8

const (
	Control Class = 1 << iota
	Digit
	Space
	Alpha
	Upper
	Lower
	Punct
	Blank
)

var classNames = [...]string{"control", "digit", "space", "alpha", "upper", "lower", "punct", "blank"}

// String lists the categories in c separated by '|'.
func (c Class) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range classNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Table maps a character value to its categories. Implementations backed by
// locale data plug in here; lookups must be safe for concurrent use.
type Table interface {
	Lookup(c uint32) Class
}

// ASCII is the built-in "C" locale table.
var ASCII Table = asciiTable{}

type asciiTable struct{}

var asciiClasses = func() [128]Class {
	var t [128]Class
	for c := range uint8(128) {
		var k Class
		if IsControl(c) {
			k |= Control
		}
		if IsDigit(c) {
			k |= Digit
		}
		if IsSpace(c) {
			k |= Space
		}
		if IsAlpha(c) {
			k |= Alpha
		}
		if IsUpper(c) {
			k |= Upper
		}
		if IsLower(c) {
			k |= Lower
		}
		if IsPunct(c) {
			k |= Punct
		}
		if IsBlank(c) {
			k |= Blank
		}
		t[c] = k
	}
	return t
}()

func (asciiTable) Lookup(c uint32) Class {
	if c >= uint32(len(asciiClasses)) {
		return 0
	}
	return asciiClasses[c]
}

// Is reports whether c belongs to any category in mask according to t.
func Is(t Table, c uint32, mask Class) bool {
	return t.Lookup(c)&mask != 0
}
