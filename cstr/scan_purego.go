//go:build purego

package cstr

import "github.com/hupe1980/gocrt/unit"

// scanLength returns the index of the first zero unit in s[:limit], or limit.
func scanLength[T unit.Unit](s []T, limit int) int {
	return scanScalar(s, 0, limit)
}
