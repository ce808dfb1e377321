package chroma

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahe0203/machinevision-toolbox/internal/testutil"
)

func TestTristim2CCImageOneHot(t *testing.T) {
	img, err := NewImageFrom(2, 2, 3, testutil.OneHotPixels(2, 2))
	require.NoError(t, err)

	cc, err := Tristim2CCImage(img)
	require.NoError(t, err)

	h, w, c := cc.Shape()
	assert.Equal(t, [3]int{2, 2, 2}, [3]int{h, w, c})

	want := []float64{
		1, 0, // red
		0, 1, // green
		0, 0, // blue
		0, 0, // black
	}
	assert.Equal(t, want, cc.Pix)
	assert.Equal(t, 1.0, cc.At(0, 0, 0))
	assert.Equal(t, 1.0, cc.At(0, 1, 1))
}

func TestTristim2CCImageMatchesVector(t *testing.T) {
	img := NewImage(3, 4, 3)
	for i := range img.Pix {
		img.Pix[i] = float64((i*37)%11) / 10
	}

	cc, err := Tristim2CCImage(img)
	require.NoError(t, err)
	for y := range img.H {
		for x := range img.W {
			px := img.Pixel(y, x)
			want := Tristim2CC(Tristim{px[0], px[1], px[2]})
			assert.InDelta(t, want[0], cc.At(y, x, 0), 1e-15)
			assert.InDelta(t, want[1], cc.At(y, x, 1), 1e-15)
		}
	}
}

func TestTristim2CCImageChannels(t *testing.T) {
	_, err := Tristim2CCImage(NewImage(1, 1, 4))
	require.ErrorIs(t, err, ErrChannels)
}

func TestNewImageFromValidates(t *testing.T) {
	_, err := NewImageFrom(2, 2, 3, make([]float64, 11))
	require.Error(t, err)
	_, err = NewImageFrom(1, 1, 0, nil)
	require.Error(t, err)
}

func TestImageAccessors(t *testing.T) {
	img := NewImage(2, 3, 3)
	img.Set(1, 2, 1, 0.5)
	assert.Equal(t, 0.5, img.At(1, 2, 1))
	assert.Equal(t, []float64{0, 0.5, 0}, img.Pixel(1, 2))

	img.Set(0, 0, 0, 3)
	mean := img.Mean()
	assert.InDeltaSlice(t, []float64{0.5, 0.5 / 6, 0}, mean, 1e-15)
	assert.Equal(t, []float64{0, 0}, NewImage(0, 0, 2).Mean())
}

func TestFromImageRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 51, B: 102, A: 255})

	img := FromImage(src)
	h, w, c := img.Shape()
	assert.Equal(t, [3]int{1, 2, 3}, [3]int{h, w, c})
	assert.Equal(t, []float64{1, 0, 0}, img.Pixel(0, 0))
	assert.InDeltaSlice(t, []float64{0, 0.2, 0.4}, img.Pixel(0, 1), 1e-15)
}

// opaqueImage hides the concrete type so FromImage takes the generic path.
type opaqueImage struct{ image.Image }

func TestFromImageTranslucent(t *testing.T) {
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.SetNRGBA(0, 0, want)
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})

	rgba := image.NewRGBA(nrgba.Bounds())
	for x := range 2 {
		rgba.Set(x, 0, nrgba.At(x, 0))
	}

	fast := FromImage(rgba)
	generic := FromImage(opaqueImage{rgba})
	fromNRGBA := FromImage(nrgba)

	testutil.RequireSliceNearlyEqual(t, fast.Pix, generic.Pix, 1e-4)
	assert.InDeltaSlice(t, []float64{200.0 / 255, 100.0 / 255, 50.0 / 255}, fromNRGBA.Pixel(0, 0), 1e-4)
	assert.InDeltaSlice(t, fromNRGBA.Pixel(0, 0), fast.Pixel(0, 0), 0.01)
	assert.Equal(t, []float64{0, 0, 0}, fast.Pixel(0, 1))
}

func TestFromImageGeneric(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(6, 5, color.Gray{Y: 255})

	img := FromImage(src)
	assert.Equal(t, []float64{0, 0, 0}, img.Pixel(0, 0))
	assert.Equal(t, []float64{1, 1, 1}, img.Pixel(0, 1))
}

func TestLinearize(t *testing.T) {
	img, err := NewImageFrom(1, 2, 3, []float64{0, 0.5, 1, 0.04045, 0.2, 0.8})
	require.NoError(t, err)

	lin, err := img.Linearize()
	require.NoError(t, err)
	assert.InDelta(t, 0, lin.Pix[0], 1e-12)
	assert.InDelta(t, 0.214041, lin.Pix[1], 1e-5)
	assert.InDelta(t, 1, lin.Pix[2], 1e-12)
	assert.InDelta(t, 0.04045/12.92, lin.Pix[3], 1e-6)

	_, err = NewImage(1, 1, 2).Linearize()
	require.ErrorIs(t, err, ErrChannels)
}
