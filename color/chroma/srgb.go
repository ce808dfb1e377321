package chroma

import "github.com/lucasb-eyer/go-colorful"

// SRGB returns the sRGB colour with chromaticity xy and luminance Y,
// clamped to the displayable range. Spectral colours lie outside the sRGB
// gamut and are clipped per channel.
func SRGB(xy Coord, Y float64) colorful.Color {
	return colorful.Xyy(xy[0], xy[1], Y).Clamped()
}

// Hex returns SRGB(xy, Y) as a "#rrggbb" string.
func Hex(xy Coord, Y float64) string {
	return SRGB(xy, Y).Hex()
}
