// Package cstr provides null-terminated string primitives with the exact
// semantics of the C string routines (strlen, strnlen, strcmp, strncmp,
// stricmp, strnicmp, strchr, strrchr, strstr, strnstr, strcasestr, strspn,
// strpbrk, strtok_r, stpcpy, stpncpy, stpcat, stpncat).
//
// Every function is generic over the code unit width (see package unit) and
// behaves identically for narrow and wide strings.
//
// A string is a slice that contains a zero unit; the logical string ends at
// the first one. Reading past the end of the slice because the terminator is
// missing panics with an index error. Positions are indices into the slice and
// "not found" is -1.
//
// # Length Strategies
//
// Length and LengthBounded step to a 4-byte boundary, then test a 32-bit word
// at a time for a zero unit and finish inside the matching word one unit at a
// time. Building with -tags purego replaces this with a plain unit loop that
// never reinterprets the caller's memory.
//
// # Conventions
//
// Index and its variants match an empty needle at position 0. This is the
// opposite of mem.Index, which never finds an empty needle; callers rely on
// both behaviors.
package cstr
