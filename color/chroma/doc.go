// Package chroma converts spectra and tristimulus values to chromaticity
// coordinates.
//
// Monochromatic stimuli and weighted mixtures are mapped through the colour
// matching functions of package cmf:
//
//	rg, err := chroma.Lambda2RG(550e-9)
//	xy, err := chroma.MixtureXY(lambda, energy)
//
// Tristimulus values, either single triples or whole H×W×3 images, are
// normalised by their channel sum with [Tristim2CC] and [Tristim2CCImage].
// A zero sum yields the coordinate (0, 0).
package chroma
