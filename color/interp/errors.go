package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrTooShort is returned when a table has fewer than two samples.
	ErrTooShort = errors.New("interp: table needs at least 2 samples")
	// ErrNotAscending is returned when the axis is not strictly increasing.
	ErrNotAscending = errors.New("interp: axis must be strictly ascending")
	// ErrLengthMismatch is returned when a curve and the axis differ in length.
	ErrLengthMismatch = errors.New("interp: curve length does not match axis")
	// ErrNoCurves is returned when a table is built without any curve.
	ErrNoCurves = errors.New("interp: no curves")
)

func validateAxis(x []float64) error {
	if len(x) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooShort, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x[%d]=%g after x[%d]=%g", ErrNotAscending, i, x[i], i-1, x[i-1])
		}
	}
	return nil
}

func validateCurves(n int, curves [][]float64) error {
	if len(curves) == 0 {
		return ErrNoCurves
	}
	for j, c := range curves {
		if len(c) != n {
			return fmt.Errorf("%w: curve %d has %d samples, axis has %d", ErrLengthMismatch, j, len(c), n)
		}
	}
	return nil
}
