package spectrum

import (
	"fmt"
	"math"
)

const axisTolerance = 1e-9

// Spectrum is a set of response curves sampled on a wavelength axis.
//
// Lambda is in metres. S has one row per wavelength and one column per
// channel. Operations never modify a Spectrum; they return a new one.
type Spectrum struct {
	Name   string
	Lambda []float64
	S      [][]float64
}

// New returns a Spectrum after checking that s has one equally wide row per
// wavelength. The inputs are copied.
func New(name string, lambda []float64, s [][]float64) (*Spectrum, error) {
	if err := validateShape(lambda, s); err != nil {
		return nil, err
	}

	cols := len(s[0])
	backing := make([]float64, len(s)*cols)
	rows := make([][]float64, len(s))
	for i, r := range s {
		rows[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
		copy(rows[i], r)
	}

	return &Spectrum{
		Name:   name,
		Lambda: append([]float64(nil), lambda...),
		S:      rows,
	}, nil
}

// FromCurve wraps a single curve as a one-channel Spectrum.
func FromCurve(name string, lambda, y []float64) (*Spectrum, error) {
	if len(y) != len(lambda) {
		return nil, fmt.Errorf("%w: %d values for %d wavelengths", ErrShape, len(y), len(lambda))
	}
	s := make([][]float64, len(y))
	for i, v := range y {
		s[i] = []float64{v}
	}
	return New(name, lambda, s)
}

// Shape returns the number of wavelength samples and channels.
func (s *Spectrum) Shape() (rows, cols int) {
	if len(s.S) == 0 {
		return len(s.Lambda), 0
	}
	return len(s.S), len(s.S[0])
}

// Len returns the number of wavelength samples.
func (s *Spectrum) Len() int { return len(s.Lambda) }

// Channels returns the number of response curves.
func (s *Spectrum) Channels() int {
	_, c := s.Shape()
	return c
}

// Column returns a copy of channel j.
func (s *Spectrum) Column(j int) []float64 {
	out := make([]float64, len(s.S))
	for i, row := range s.S {
		out[i] = row[j]
	}
	return out
}

// Columns returns every channel as its own slice.
func (s *Spectrum) Columns() [][]float64 {
	out := make([][]float64, s.Channels())
	for j := range out {
		out[j] = s.Column(j)
	}
	return out
}

// Range returns the first and last wavelength.
func (s *Spectrum) Range() (lo, hi float64) {
	if len(s.Lambda) == 0 {
		return 0, 0
	}
	return s.Lambda[0], s.Lambda[len(s.Lambda)-1]
}

// Scale returns s with every response multiplied by k.
func (s *Spectrum) Scale(k float64) *Spectrum {
	out := s.clone()
	for _, row := range out.S {
		for j := range row {
			row[j] *= k
		}
	}
	return out
}

// Mul multiplies two spectra sampled on the same axis element-wise, for
// example a reflectance by an illuminant. A one-channel operand is
// broadcast across the channels of the other.
func (s *Spectrum) Mul(o *Spectrum) (*Spectrum, error) {
	if !sameAxis(s.Lambda, o.Lambda) {
		return nil, ErrAxisMismatch
	}

	a, b := s.Channels(), o.Channels()
	cols := max(a, b)
	if a != b && a != 1 && b != 1 {
		return nil, fmt.Errorf("%w: %d and %d", ErrChannels, a, b)
	}

	rows := make([][]float64, len(s.S))
	for i := range rows {
		rows[i] = make([]float64, cols)
		for j := range cols {
			rows[i][j] = s.S[i][min(j, a-1)] * o.S[i][min(j, b-1)]
		}
	}

	name := s.Name
	if o.Name != "" {
		name = s.Name + "*" + o.Name
	}
	return &Spectrum{Name: name, Lambda: append([]float64(nil), s.Lambda...), S: rows}, nil
}

func (s *Spectrum) clone() *Spectrum {
	out, _ := New(s.Name, s.Lambda, s.S)
	if out == nil {
		return &Spectrum{Name: s.Name, Lambda: append([]float64(nil), s.Lambda...)}
	}
	return out
}

// Linspace returns n evenly spaced wavelengths from a to b inclusive.
func Linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	out[n-1] = b
	return out
}

func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > axisTolerance*math.Max(math.Abs(a[i]), math.Abs(b[i])) {
			return false
		}
	}
	return true
}

func uniformStep(lambda []float64) (float64, bool) {
	if len(lambda) < 2 {
		return 0, false
	}
	step := lambda[1] - lambda[0]
	if !(step > 0) {
		return 0, false
	}
	for i := 2; i < len(lambda); i++ {
		if math.Abs((lambda[i]-lambda[i-1])-step) > 1e-6*step {
			return 0, false
		}
	}
	return step, true
}
