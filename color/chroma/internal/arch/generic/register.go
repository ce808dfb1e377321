// Package generic registers the portable chromaticity kernel.
package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/tahe0203/machinevision-toolbox/color/chroma/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Normalize: Normalize,
	})
}

// Normalize divides each pixel's first two channels by the channel sum.
func Normalize(dst, src []float64) {
	n := len(src) / 3
	dst = dst[:2*n]
	src = src[:3*n]

	for p := 0; p < n; p++ {
		a, b, c := src[3*p], src[3*p+1], src[3*p+2]
		sum := a + b + c
		if sum == 0 {
			dst[2*p], dst[2*p+1] = 0, 0
			continue
		}
		inv := 1 / sum
		dst[2*p] = a * inv
		dst[2*p+1] = b * inv
	}
}
