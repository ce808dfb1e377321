// Package blackbody computes the spectral radiance of an ideal thermal
// radiator using Planck's law.
package blackbody

import (
	"math"

	"github.com/tahe0203/machinevision-toolbox/color/spectrum"
)

// Physical constants in SI units.
const (
	C = 2.99792458e8  // speed of light [m/s]
	H = 6.626068e-34  // Planck constant [J s]
	K = 1.3806503e-23 // Boltzmann constant [J/K]
)

// Radiance returns the spectral radiance [W sr⁻¹ m⁻³] at wavelength lambda
// (metres) of a blackbody at temperature T (kelvin). Non-positive inputs
// yield 0.
func Radiance(lambda, T float64) float64 {
	if !(lambda > 0) || !(T > 0) {
		return 0
	}
	l5 := lambda * lambda * lambda * lambda * lambda
	return 2 * H * C * C / (l5 * math.Expm1(H*C/(K*T*lambda)))
}

// Spectrum evaluates Radiance at every wavelength of lambda.
func Spectrum(lambda []float64, T float64) []float64 {
	out := make([]float64, len(lambda))
	for i, l := range lambda {
		out[i] = Radiance(l, T)
	}
	return out
}

// Source returns the radiance of a blackbody at T as a one-channel
// spectrum on lambda, named after its temperature.
func Source(lambda []float64, T float64) (*spectrum.Spectrum, error) {
	return spectrum.FromCurve(name(T), lambda, Spectrum(lambda, T))
}

// Peak returns the wavelength of maximum radiance at T from Wien's
// displacement law.
func Peak(T float64) float64 {
	const wien = 2.8977729e-3 // [m K]
	if !(T > 0) {
		return 0
	}
	return wien / T
}

func name(T float64) string {
	return "blackbody-" + formatKelvin(T)
}
