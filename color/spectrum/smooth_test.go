package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahe0203/machinevision-toolbox/internal/testutil"
)

func TestSmoothKeepsConstant(t *testing.T) {
	lam := Linspace(400e-9, 700e-9, 61)
	flat, err := FromCurve("flat", lam, testutil.DC(0.4, len(lam)))
	require.NoError(t, err)

	out, err := flat.Smooth(20e-9)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, out.Column(0), flat.Column(0), 1e-9)
}

func TestSmoothBroadensPeak(t *testing.T) {
	lam := Linspace(400e-9, 700e-9, 301)
	peak := testutil.GaussianPeak(lam, 550e-9, 5e-9)
	s, err := FromCurve("line", lam, peak)
	require.NoError(t, err)

	out, err := s.Smooth(20e-9)
	require.NoError(t, err)
	got := out.Column(0)
	testutil.RequireFinite(t, got)

	// Convolving Gaussians adds variances.
	sigmaIn := 5e-9
	sigmaK := 20e-9 / (2 * math.Sqrt(2*math.Ln2))
	sigmaOut := math.Hypot(sigmaIn, sigmaK)
	want := testutil.GaussianPeak(lam, 550e-9, sigmaOut)
	for i := range want {
		want[i] *= sigmaIn / sigmaOut
	}
	d, err := testutil.MaxAbsDiff(got, want)
	require.NoError(t, err)
	assert.Less(t, d, 1e-3)
}

func TestSmoothPreservesEveryChannel(t *testing.T) {
	lam := Linspace(400e-9, 700e-9, 31)
	rows := make([][]float64, len(lam))
	for i := range rows {
		rows[i] = []float64{1, 2, 3}
	}
	s, err := New("rgb", lam, rows)
	require.NoError(t, err)

	out, err := s.Smooth(30e-9)
	require.NoError(t, err)
	for _, row := range out.S {
		testutil.RequireSliceNearlyEqual(t, row, []float64{1, 2, 3}, 1e-9)
	}
}

func TestSmoothNarrowWidthIsIdentity(t *testing.T) {
	lam := Linspace(400e-9, 700e-9, 4)
	s, err := FromCurve("x", lam, []float64{1, 5, 2, 7})
	require.NoError(t, err)

	out, err := s.Smooth(1e-15)
	require.NoError(t, err)
	assert.Equal(t, s.Column(0), out.Column(0))
}

func TestSmoothErrors(t *testing.T) {
	s, err := FromCurve("x", []float64{1e-7, 2e-7, 4e-7}, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = s.Smooth(1e-8)
	require.ErrorIs(t, err, ErrNonUniform)

	_, err = s.Smooth(0)
	require.Error(t, err)
}
