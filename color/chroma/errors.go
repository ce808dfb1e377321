package chroma

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned when no wavelengths are given.
	ErrEmpty = errors.New("chroma: empty input")
	// ErrDomain is returned for non-positive or NaN wavelengths.
	ErrDomain = errors.New("chroma: wavelength must be > 0")
	// ErrLengthMismatch is returned when wavelength and energy lengths differ.
	ErrLengthMismatch = errors.New("chroma: wavelength and energy lengths differ")
	// ErrChannels is returned for inputs with the wrong number of channels.
	ErrChannels = errors.New("chroma: wrong channel count")
)

func validateLambda(lambda []float64) error {
	if len(lambda) == 0 {
		return ErrEmpty
	}
	for i, l := range lambda {
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: lambda[%d]=%g", ErrDomain, i, l)
		}
	}
	return nil
}

func validateMixture(lambda, energy []float64) error {
	if err := validateLambda(lambda); err != nil {
		return err
	}
	if len(energy) != len(lambda) {
		return fmt.Errorf("%w: %d wavelengths, %d energies", ErrLengthMismatch, len(lambda), len(energy))
	}
	return nil
}
