// Package ctype classifies and case-converts code units under the default
// "C" locale.
//
// The same ASCII policy applies to every unit width: a 16- or 32-bit unit
// outside the ASCII range belongs to no class and has no case. Locale-aware
// classification is supplied from outside through the Table interface.
package ctype
