package ctype

import "github.com/hupe1980/gocrt/unit"

// caseBit is the only bit that differs between an ASCII letter's cases.
const caseBit = 'a' ^ 'A'

// IsControl reports whether c is a control character (0x00-0x1F, 0x7F).
func IsControl[T unit.Unit](c T) bool {
	return c <= 0x1F || c == 0x7F
}

// IsDigit reports whether c is a decimal digit.
func IsDigit[T unit.Unit](c T) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is a hexadecimal digit.
func IsHexDigit[T unit.Unit](c T) bool {
	return IsDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// IsBlank reports whether c is a space or a horizontal tab.
func IsBlank[T unit.Unit](c T) bool {
	return c == '\t' || c == ' '
}

// IsSpace reports whether c is whitespace: '\t', '\n', '\v', '\f', '\r' or ' '.
func IsSpace[T unit.Unit](c T) bool {
	return (c >= '\t' && c <= '\r') || c == ' '
}

// IsUpper reports whether c is an uppercase letter.
func IsUpper[T unit.Unit](c T) bool {
	return c >= 'A' && c <= 'Z'
}

// IsLower reports whether c is a lowercase letter.
func IsLower[T unit.Unit](c T) bool {
	return c >= 'a' && c <= 'z'
}

// IsAlpha reports whether c is a letter.
func IsAlpha[T unit.Unit](c T) bool {
	return IsUpper(c) || IsLower(c)
}

// IsAlphaNum reports whether c is a letter or a decimal digit.
func IsAlphaNum[T unit.Unit](c T) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsPrint reports whether c is printable, space included.
func IsPrint[T unit.Unit](c T) bool {
	return c >= ' ' && c <= '~'
}

// IsGraph reports whether c is printable and not a space.
func IsGraph[T unit.Unit](c T) bool {
	return c >= '!' && c <= '~'
}

// IsPunct reports whether c is a printable character that is neither
// alphanumeric nor a space.
func IsPunct[T unit.Unit](c T) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

// ToLower maps an uppercase letter to lowercase; every other unit is returned as is.
func ToLower[T unit.Unit](c T) T {
	if IsUpper(c) {
		return c | caseBit
	}
	return c
}

// ToUpper maps a lowercase letter to uppercase; every other unit is returned as is.
func ToUpper[T unit.Unit](c T) T {
	if IsLower(c) {
		return c &^ caseBit
	}
	return c
}
