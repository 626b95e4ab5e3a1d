// Package conv provides zero-copy views over slices of code units.
//
// Views reinterpret a slice of units as the bytes backing it, so unit-width
// routines can reuse the byte kernels without copying. Take is the single
// bounds assertion every primitive makes on entry.
package conv
