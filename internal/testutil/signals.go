package testutil

import "math"

// Linspace returns n evenly spaced values from a to b inclusive.
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

// GaussianPeak samples a unit-height Gaussian centred at mu with standard
// deviation sigma on the axis x.
func GaussianPeak(x []float64, mu, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - mu) / sigma
		out[i] = math.Exp(-0.5 * d * d)
	}
	return out
}

// DC generates a constant-valued curve.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// OneHotPixels returns interleaved 3-channel pixel data for an h×w image
// whose pixels cycle through pure red, pure green, pure blue and black in
// row-major order.
func OneHotPixels(h, w int) []float64 {
	out := make([]float64, h*w*3)
	for p := 0; p < h*w; p++ {
		if c := p % 4; c < 3 {
			out[p*3+c] = 1
		}
	}
	return out
}
