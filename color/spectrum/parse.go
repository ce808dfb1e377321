package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const (
	// nmPerMetre converts table wavelengths to metres. Dividing keeps
	// tabulated knots bit-identical to literals such as 550e-9.
	nmPerMetre = 1e9

	// A table whose longest wavelength is below maxMetres is already in
	// metres. One whose longest wavelength is at most maxNanometres is in
	// nanometres. Anything longer is rejected.
	maxMetres     = 1e-3
	maxNanometres = 1e6
)

// Parse reads a spectral table from r. The wavelength column may be in
// metres or nanometres; the unit is chosen from the longest wavelength and
// the result is always in metres. No resampling is done.
func Parse(r io.Reader, name string) (*Spectrum, error) {
	var (
		lambda []float64
		rows   [][]float64
		cols   = -1
		line   = 0
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '%' || text[0] == '#' {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s line %d: need wavelength and at least one response", ErrMalformed, name, line)
		}
		if cols < 0 {
			cols = len(fields) - 1
		} else if len(fields)-1 != cols {
			return nil, fmt.Errorf("%w: %s line %d: %d responses, want %d", ErrMalformed, name, line, len(fields)-1, cols)
		}

		values := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %w", ErrMalformed, name, line, err)
			}
			values[i] = v
		}

		lam := values[0]
		if n := len(lambda); n > 0 && !(lam > lambda[n-1]) {
			return nil, fmt.Errorf("%w: %s line %d: wavelength %g not ascending", ErrMalformed, name, line, lam)
		}
		lambda = append(lambda, lam)
		rows = append(rows, values[1:])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spectrum: read %s: %w", name, err)
	}
	if len(lambda) < 2 {
		return nil, fmt.Errorf("%w: %s: need at least 2 samples, got %d", ErrMalformed, name, len(lambda))
	}
	if err := toMetres(lambda); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}

	return &Spectrum{Name: name, Lambda: lambda, S: rows}, nil
}

// toMetres rescales an ascending wavelength axis in place.
func toMetres(lambda []float64) error {
	lo, hi := lambda[0], lambda[len(lambda)-1]
	if !(lo > 0) {
		return fmt.Errorf("wavelength %g is not positive", lo)
	}
	switch {
	case hi < maxMetres:
		return nil
	case hi <= maxNanometres:
		for i := range lambda {
			lambda[i] /= nmPerMetre
		}
		return nil
	default:
		return fmt.Errorf("wavelength %g is neither metres nor nanometres", hi)
	}
}
