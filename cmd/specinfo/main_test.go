package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestList(t *testing.T) {
	code, out, _ := runCapture(t, "-list")
	require.Equal(t, 0, code)
	assert.Equal(t, "cmfrgb\ncmfxyz\ncones\nredbrick\nsolar\n", out)
}

func TestSources(t *testing.T) {
	code, out, _ := runCapture(t, "solar", "cones")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Source"))

	solar := strings.Fields(lines[2])
	require.Len(t, solar, 8)
	assert.Equal(t, "solar", solar[0])
	assert.Equal(t, "380.0", solar[1])
	assert.Equal(t, "900.0", solar[2])
	assert.Equal(t, "1", solar[4])
	assert.True(t, strings.HasPrefix(solar[7], "#"))

	cones := strings.Fields(lines[3])
	assert.Equal(t, "3", cones[4])
	assert.Equal(t, "-", cones[5])
}

func TestSmoothedSource(t *testing.T) {
	code, out, _ := runCapture(t, "-fwhm", "20", "solar")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "solar")
}

func TestMissingSource(t *testing.T) {
	code, out, errOut := runCapture(t, "no-such-table")
	assert.Equal(t, 1, code)
	assert.NotContains(t, out, "no-such-table")
	assert.Contains(t, errOut, "no-such-table")
}

func TestBlackbody(t *testing.T) {
	code, out, _ := runCapture(t, "-blackbody", "6500")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "blackbody 6500K")
	assert.Contains(t, out, "x=0.31")
}

func TestBlackbodyRejectsNegative(t *testing.T) {
	code, _, errOut := runCapture(t, "-blackbody", "-5")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "temperature")
}

func TestLocus(t *testing.T) {
	code, out, _ := runCapture(t, "-locus")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2+31)
	assert.True(t, strings.HasPrefix(lines[2], "400"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "700"))
}

func writeSolidPNG(t *testing.T, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	p := filepath.Join(t.TempDir(), "solid.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return p
}

func TestImage(t *testing.T) {
	p := writeSolidPNG(t, 4, 2, color.RGBA{R: 255, A: 255})

	code, out, _ := runCapture(t, "-image", p)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "4x2")
	assert.Contains(t, out, "mean r=1.0000 g=0.0000")
}

func TestImageDownsampled(t *testing.T) {
	p := writeSolidPNG(t, 8, 4, color.RGBA{G: 255, A: 255})

	code, out, _ := runCapture(t, "-image", p, "-maxdim", "2")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "2x1")
}

func TestImageMissing(t *testing.T) {
	code, _, errOut := runCapture(t, "-image", filepath.Join(t.TempDir(), "nope.png"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "image failed")
}

func TestBadFlag(t *testing.T) {
	code, _, _ := runCapture(t, "-nope")
	assert.Equal(t, 2, code)
}
