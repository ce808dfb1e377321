package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fwhmToSigma converts a Gaussian full width at half maximum to its
// standard deviation.
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// Smooth convolves every channel with a Gaussian band-pass of the given
// full width at half maximum (metres), as seen through a spectrometer slit.
// Edges are renormalised by the kernel mass that falls inside the axis, so
// a constant curve stays constant. The axis must be evenly spaced.
func (s *Spectrum) Smooth(fwhm float64) (*Spectrum, error) {
	if err := validateFWHM(fwhm); err != nil {
		return nil, err
	}
	step, ok := uniformStep(s.Lambda)
	if !ok {
		return nil, ErrNonUniform
	}

	sigma := fwhm * fwhmToSigma / step
	if sigma < 0.1 {
		return s.clone(), nil
	}
	half := int(math.Ceil(4 * sigma))

	kernel := make([]float64, 2*half+1)
	for i := range kernel {
		d := float64(i-half) / sigma
		kernel[i] = math.Exp(-0.5 * d * d)
	}

	n := len(s.Lambda)
	fftSize := nextPowerOf2(n + len(kernel) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	kernelFFT := make([]complex128, fftSize)
	if err := forward(plan, kernelFFT, kernel); err != nil {
		return nil, err
	}

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	mass, err := convolveSame(plan, kernelFFT, ones, half)
	if err != nil {
		return nil, err
	}

	out := s.clone()
	for j := range s.Channels() {
		smoothed, err := convolveSame(plan, kernelFFT, s.Column(j), half)
		if err != nil {
			return nil, err
		}
		for i, row := range out.S {
			row[j] = smoothed[i] / mass[i]
		}
	}
	return out, nil
}

// convolveSame returns the centred len(x) samples of the linear
// convolution of x with the kernel whose spectrum is kernelFFT.
func convolveSame(plan *algofft.Plan[complex128], kernelFFT []complex128, x []float64, half int) ([]float64, error) {
	buf := make([]complex128, len(kernelFFT))
	if err := forward(plan, buf, x); err != nil {
		return nil, err
	}
	for i := range buf {
		buf[i] *= kernelFFT[i]
	}
	if err := plan.Inverse(buf, buf); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(x))
	for i := range out {
		out[i] = real(buf[i+half])
	}
	return out, nil
}

func forward(plan *algofft.Plan[complex128], dst []complex128, x []float64) error {
	padded := make([]complex128, len(dst))
	for i, v := range x {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(dst, padded); err != nil {
		return fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
