package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when a table name cannot be resolved.
	ErrSourceNotFound = errors.New("spectrum: source not found")
	// ErrMalformed is returned for unparsable spectral tables.
	ErrMalformed = errors.New("spectrum: malformed table")
	// ErrEmptyAxis is returned when the target wavelength axis is empty.
	ErrEmptyAxis = errors.New("spectrum: empty wavelength axis")
	// ErrShape is returned when response rows do not match the axis.
	ErrShape = errors.New("spectrum: response shape does not match axis")
	// ErrAxisMismatch is returned when two spectra are not on the same axis.
	ErrAxisMismatch = errors.New("spectrum: wavelength axes differ")
	// ErrChannels is returned when channel counts cannot be broadcast.
	ErrChannels = errors.New("spectrum: incompatible channel counts")
	// ErrNonUniform is returned by operations that need an evenly spaced axis.
	ErrNonUniform = errors.New("spectrum: wavelength axis is not uniform")
)

func validateShape(lambda []float64, s [][]float64) error {
	if len(lambda) == 0 {
		return ErrEmptyAxis
	}
	if len(s) != len(lambda) {
		return fmt.Errorf("%w: %d rows for %d wavelengths", ErrShape, len(s), len(lambda))
	}
	cols := len(s[0])
	if cols == 0 {
		return fmt.Errorf("%w: no channels", ErrShape)
	}
	for i, row := range s {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d channels, want %d", ErrShape, i, len(row), cols)
		}
	}
	return nil
}

func validateFWHM(fwhm float64) error {
	if !(fwhm > 0) {
		return fmt.Errorf("spectrum: smoothing width must be > 0: %g", fwhm)
	}
	return nil
}
