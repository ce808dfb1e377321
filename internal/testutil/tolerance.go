// Package testutil holds assertions and fixtures shared by the color tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelNearlyEqual fails t if got differs from want by more than
// rel·|want|. Radiance values span many decades, so absolute tolerances are
// meaningless there.
func RequireRelNearlyEqual(t *testing.T, got, want, rel float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > rel*math.Abs(want) {
		t.Fatalf("got %v, want %v (rel diff %v > %v)", got, want, diff/math.Abs(want), rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireShape fails t unless rows is an r×c matrix.
func RequireShape(t *testing.T, rows [][]float64, r, c int) {
	t.Helper()
	if len(rows) != r {
		t.Fatalf("rows = %d, want %d", len(rows), r)
	}
	for i, row := range rows {
		if len(row) != c {
			t.Fatalf("row %d: cols = %d, want %d", i, len(row), c)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
