package chroma

import (
	"fmt"

	"github.com/tahe0203/machinevision-toolbox/color/cmf"
	"github.com/tahe0203/machinevision-toolbox/color/spectrum"
)

type cmfFunc func([]float64, ...spectrum.Option) (*spectrum.Spectrum, error)

// Lambda2RG returns the rg chromaticity of monochromatic light at lambda
// (metres). Wavelengths outside the colour matching table give (0, 0).
func Lambda2RG(lambda float64) (Coord, error) {
	return single(cmf.RGB, lambda)
}

// Lambda2RGs returns the rg chromaticity of each wavelength in lambda.
func Lambda2RGs(lambda []float64) ([]Coord, error) {
	return perWavelength(cmf.RGB, lambda)
}

// MixtureRG returns the rg chromaticity of light whose spectral power at
// lambda[i] is energy[i].
func MixtureRG(lambda, energy []float64) (Coord, error) {
	t, err := mixture(cmf.RGB, lambda, energy)
	if err != nil {
		return Coord{}, err
	}
	return Tristim2CC(t), nil
}

// Lambda2XY returns the CIE xy chromaticity of monochromatic light at
// lambda (metres). Wavelengths outside the colour matching table give
// (0, 0).
func Lambda2XY(lambda float64) (Coord, error) {
	return single(cmf.XYZ, lambda)
}

// Lambda2XYs returns the xy chromaticity of each wavelength in lambda.
func Lambda2XYs(lambda []float64) ([]Coord, error) {
	return perWavelength(cmf.XYZ, lambda)
}

// MixtureXY returns the xy chromaticity of light whose spectral power at
// lambda[i] is energy[i].
func MixtureXY(lambda, energy []float64) (Coord, error) {
	t, err := mixture(cmf.XYZ, lambda, energy)
	if err != nil {
		return Coord{}, err
	}
	return Tristim2CC(t), nil
}

// Locus returns the spectral locus in xy sampled at lambda.
func Locus(lambda []float64) ([]Coord, error) {
	return Lambda2XYs(lambda)
}

// SpectrumXYZ integrates a one-channel spectral power distribution against
// the CIE 1931 observer.
func SpectrumXYZ(s *spectrum.Spectrum) (Tristim, error) {
	return spectrumTristim(cmf.XYZ, s)
}

// SpectrumRGB integrates a one-channel spectral power distribution against
// the CIE 1931 RGB colour matching functions.
func SpectrumRGB(s *spectrum.Spectrum) (Tristim, error) {
	return spectrumTristim(cmf.RGB, s)
}

// SpectrumXY returns the xy chromaticity of a one-channel spectrum.
func SpectrumXY(s *spectrum.Spectrum) (Coord, error) {
	t, err := SpectrumXYZ(s)
	if err != nil {
		return Coord{}, err
	}
	return Tristim2CC(t), nil
}

func single(f cmfFunc, lambda float64) (Coord, error) {
	cs, err := perWavelength(f, []float64{lambda})
	if err != nil {
		return Coord{}, err
	}
	return cs[0], nil
}

func perWavelength(f cmfFunc, lambda []float64) ([]Coord, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}
	s, err := f(lambda)
	if err != nil {
		return nil, err
	}

	out := make([]Coord, len(s.S))
	for i, row := range s.S {
		out[i] = Tristim2CC(Tristim{row[0], row[1], row[2]})
	}
	return out, nil
}

func mixture(f cmfFunc, lambda, energy []float64) (Tristim, error) {
	if err := validateMixture(lambda, energy); err != nil {
		return Tristim{}, err
	}
	s, err := f(lambda)
	if err != nil {
		return Tristim{}, err
	}
	return integrate(lambda, energy, s.S), nil
}

func spectrumTristim(f cmfFunc, s *spectrum.Spectrum) (Tristim, error) {
	if s.Channels() != 1 {
		return Tristim{}, fmt.Errorf("%w: spectral power needs 1, got %d", ErrChannels, s.Channels())
	}
	return mixture(f, s.Lambda, s.Column(0))
}

// integrate returns the trapezoidal integral of energy·cmf over lambda.
// A single sample is weighted directly.
func integrate(lambda, energy []float64, cmfRows [][]float64) Tristim {
	var t Tristim
	if len(lambda) == 1 {
		for c := range t {
			t[c] = energy[0] * cmfRows[0][c]
		}
		return t
	}
	for i := 0; i+1 < len(lambda); i++ {
		h := 0.5 * (lambda[i+1] - lambda[i])
		for c := range t {
			t[c] += h * (energy[i]*cmfRows[i][c] + energy[i+1]*cmfRows[i+1][c])
		}
	}
	return t
}
