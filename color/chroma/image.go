package chroma

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tahe0203/machinevision-toolbox/color/chroma/internal/arch/registry"
)

// Image is a dense H×W×C array of float64 samples stored row-major with
// interleaved channels.
type Image struct {
	H, W, C int
	Pix     []float64
}

// NewImage returns a zeroed h×w×c image.
func NewImage(h, w, c int) *Image {
	return &Image{H: h, W: w, C: c, Pix: make([]float64, h*w*c)}
}

// NewImageFrom wraps pix, which must hold exactly h·w·c samples. pix is
// not copied.
func NewImageFrom(h, w, c int, pix []float64) (*Image, error) {
	if h < 0 || w < 0 || c <= 0 || len(pix) != h*w*c {
		return nil, fmt.Errorf("chroma: %d samples for a %d×%d×%d image", len(pix), h, w, c)
	}
	return &Image{H: h, W: w, C: c, Pix: pix}, nil
}

// Shape returns height, width and channel count.
func (m *Image) Shape() (h, w, c int) {
	return m.H, m.W, m.C
}

// At returns channel c of the pixel at row y, column x.
func (m *Image) At(y, x, c int) float64 {
	return m.Pix[(y*m.W+x)*m.C+c]
}

// Set stores v in channel c of the pixel at row y, column x.
func (m *Image) Set(y, x, c int, v float64) {
	m.Pix[(y*m.W+x)*m.C+c] = v
}

// Pixel returns the channels of the pixel at (y, x) as a view into Pix.
func (m *Image) Pixel(y, x int) []float64 {
	i := (y*m.W + x) * m.C
	return m.Pix[i : i+m.C : i+m.C]
}

// Mean returns the per-channel mean over all pixels.
func (m *Image) Mean() []float64 {
	out := make([]float64, m.C)
	n := m.H * m.W
	if n == 0 {
		return out
	}
	for p := 0; p < n; p++ {
		for c := range m.C {
			out[c] += m.Pix[p*m.C+c]
		}
	}
	for c := range out {
		out[c] /= float64(n)
	}
	return out
}

// FromImage converts a decoded raster to a 3-channel image with samples in
// [0, 1]. Alpha is removed, so translucent pixels keep their colour and
// fully transparent pixels are black. Values keep the source encoding; see
// [Image.Linearize].
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	out := NewImage(b.Dy(), b.Dx(), 3)

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < out.H; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < out.W; x++ {
				a := float64(row[4*x+3])
				if a == 0 {
					continue
				}
				// Pix is alpha-premultiplied.
				px := out.Pixel(y, x)
				px[0] = float64(row[4*x]) / a
				px[1] = float64(row[4*x+1]) / a
				px[2] = float64(row[4*x+2]) / a
			}
		}
		return out
	}

	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			px := out.Pixel(y, x)
			px[0] = float64(c.R) / 0xffff
			px[1] = float64(c.G) / 0xffff
			px[2] = float64(c.B) / 0xffff
		}
	}
	return out
}

// Linearize returns a copy of a 3-channel sRGB-encoded image with the sRGB
// transfer function removed.
func (m *Image) Linearize() (*Image, error) {
	if m.C != 3 {
		return nil, fmt.Errorf("%w: linearize needs 3, got %d", ErrChannels, m.C)
	}
	out := NewImage(m.H, m.W, 3)
	for i := 0; i+2 < len(m.Pix); i += 3 {
		c := colorful.Color{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}
		out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.LinearRgb()
	}
	return out, nil
}

var (
	normalizeImpl     registry.NormalizeFn
	normalizeInitOnce sync.Once
)

func initNormalizeKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("chroma: no Normalize kernel registered (missing generic fallback?)")
	}
	if entry.Normalize == nil {
		panic("chroma: selected kernel missing Normalize")
	}
	normalizeImpl = entry.Normalize
}

// Tristim2CCImage converts an H×W×3 tristimulus image into an H×W×2
// chromaticity image. Pixels with a zero channel sum map to (0, 0).
func Tristim2CCImage(img *Image) (*Image, error) {
	if img.C != 3 {
		return nil, fmt.Errorf("%w: tristimulus image needs 3, got %d", ErrChannels, img.C)
	}
	normalizeInitOnce.Do(initNormalizeKernel)

	out := NewImage(img.H, img.W, 2)
	normalizeImpl(out.Pix, img.Pix)
	return out, nil
}
