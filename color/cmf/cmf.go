// Package cmf provides colour matching functions and cone sensitivities
// resampled onto arbitrary wavelength axes.
//
// Tables are read once per process, honouring MVTB_DATA_PATH, and then
// interpolated on every call. Outside the tabulated range the functions are
// zero unless overridden with spectrum.WithExtrapolation.
package cmf

import (
	"fmt"
	"sync"

	"github.com/tahe0203/machinevision-toolbox/color/spectrum"
)

// Table names resolved through spectrum.Open.
const (
	XYZName   = "cmfxyz"
	RGBName   = "cmfrgb"
	ConesName = "cones"
)

type cached struct {
	once sync.Once
	s    *spectrum.Spectrum
	err  error
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*cached{}
)

// Table returns the tabulated data called name, without resampling. The
// result is shared and must not be modified.
func Table(name string) (*spectrum.Spectrum, error) {
	cacheMu.Lock()
	c, ok := cache[name]
	if !ok {
		c = &cached{}
		cache[name] = c
	}
	cacheMu.Unlock()

	c.once.Do(func() {
		c.s, c.err = spectrum.Read(name, spectrum.DefaultSearchPath())
		if c.err == nil && c.s.Channels() != 3 {
			c.err = fmt.Errorf("cmf: %s has %d channels, want 3", name, c.s.Channels())
		}
	})
	return c.s, c.err
}

// XYZ returns the CIE 1931 2° observer x̄, ȳ, z̄ on lambda (metres).
func XYZ(lambda []float64, opts ...spectrum.Option) (*spectrum.Spectrum, error) {
	return sample(XYZName, lambda, opts)
}

// RGB returns the CIE 1931 r̄, ḡ, b̄ colour matching functions for the
// primaries 700.0, 546.1 and 435.8 nm on lambda (metres).
func RGB(lambda []float64, opts ...spectrum.Option) (*spectrum.Spectrum, error) {
	return sample(RGBName, lambda, opts)
}

// Cones returns the L, M, S cone sensitivities on lambda (metres).
func Cones(lambda []float64, opts ...spectrum.Option) (*spectrum.Spectrum, error) {
	return sample(ConesName, lambda, opts)
}

func sample(name string, lambda []float64, opts []spectrum.Option) (*spectrum.Spectrum, error) {
	src, err := Table(name)
	if err != nil {
		return nil, err
	}
	out, err := spectrum.Resample(src, lambda, opts...)
	if err != nil {
		return nil, fmt.Errorf("cmf: %s: %w", name, err)
	}
	return out, nil
}
