package selfcheck

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gocrt/internal/simd"
)

var (
	// ErrMismatch is wrapped by every MismatchError.
	ErrMismatch = errors.New("selfcheck: result differs from reference")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("selfcheck: invalid option")

	// ErrNoKernels is returned when no kernel family is selected for checking.
	ErrNoKernels = errors.New("selfcheck: no kernel families")
)

// MismatchError describes the first disagreement between a kernel and its
// scalar reference.
//
// errors.Is(err, ErrMismatch) holds for every MismatchError.
type MismatchError struct {
	Op     string
	ISA    simd.ISA
	Size   int
	Offset int
	Want   int
	Got    int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("selfcheck: %s (%s) size=%d offset=%d: want %d, got %d",
		e.Op, e.ISA, e.Size, e.Offset, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// invalidOption wraps ErrInvalidOption with the offending option.
func invalidOption(name string, value int) error {
	return fmt.Errorf("%w: %s=%d", ErrInvalidOption, name, value)
}
