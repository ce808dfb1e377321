package interp

import (
	"math"
	"sort"
)

const uniformTolerance = 1e-9

// Table holds one or more curves sampled on a shared ascending axis.
// A Table is immutable and safe for concurrent use.
type Table struct {
	x       []float64
	curves  [][]float64
	cfg     Config
	uniform bool
}

// NewTable builds a table from axis x and curves, each of which must have
// len(x) samples. The inputs are copied.
func NewTable(x []float64, curves [][]float64, opts ...Option) (*Table, error) {
	if err := validateAxis(x); err != nil {
		return nil, err
	}
	if err := validateCurves(len(x), curves); err != nil {
		return nil, err
	}

	t := &Table{
		x:      append([]float64(nil), x...),
		curves: make([][]float64, len(curves)),
		cfg:    ApplyOptions(opts...),
	}
	for j, c := range curves {
		t.curves[j] = append([]float64(nil), c...)
	}
	t.uniform = isUniform(t.x)
	return t, nil
}

// Len returns the number of tabulated samples.
func (t *Table) Len() int { return len(t.x) }

// Curves returns the number of curves.
func (t *Table) Curves() int { return len(t.curves) }

// Domain returns the first and last axis values.
func (t *Table) Domain() (lo, hi float64) {
	return t.x[0], t.x[len(t.x)-1]
}

// Uniform reports whether the axis is evenly spaced.
func (t *Table) Uniform() bool { return t.uniform }

// Config returns the evaluation settings.
func (t *Table) Config() Config { return t.cfg }

// Eval writes the value of every curve at q into dst and returns it.
// dst is reallocated when its length differs from the curve count.
func (t *Table) Eval(dst []float64, q float64) []float64 {
	if len(dst) != len(t.curves) {
		dst = make([]float64, len(t.curves))
	}
	for j := range t.curves {
		dst[j] = t.at(j, q)
	}
	return dst
}

// At returns curve j evaluated at q.
func (t *Table) At(j int, q float64) float64 {
	return t.at(j, q)
}

// Resample evaluates every curve at each point of q. The result has one
// row per query and one column per curve.
func (t *Table) Resample(q []float64) [][]float64 {
	out := make([][]float64, len(q))
	backing := make([]float64, len(q)*len(t.curves))
	for i, v := range q {
		row := backing[i*len(t.curves) : (i+1)*len(t.curves) : (i+1)*len(t.curves)]
		out[i] = t.Eval(row, v)
	}
	return out
}

func (t *Table) at(j int, q float64) float64 {
	y := t.curves[j]
	n := len(t.x)

	if math.IsNaN(q) {
		return math.NaN()
	}
	if q < t.x[0] || q > t.x[n-1] {
		return t.extrapolate(y, q)
	}

	i := sort.SearchFloat64s(t.x, q)
	if t.x[i] == q {
		return y[i]
	}
	k := i - 1
	h := t.x[k+1] - t.x[k]
	frac := (q - t.x[k]) / h

	if t.cfg.Method == Linear {
		return Linear2(frac, y[k], y[k+1])
	}
	if t.uniform && k > 0 && k+2 < n {
		return Hermite4(frac, y[k-1], y[k], y[k+1], y[k+2])
	}
	return hermite(frac, y[k], y[k+1], t.tangent(y, k)*h, t.tangent(y, k+1)*h)
}

func (t *Table) extrapolate(y []float64, q float64) float64 {
	n := len(t.x)
	switch t.cfg.Extrapolation {
	case Clamp:
		if q < t.x[0] {
			return y[0]
		}
		return y[n-1]
	case Extend:
		k := 0
		if q > t.x[n-1] {
			k = n - 2
		}
		slope := (y[k+1] - y[k]) / (t.x[k+1] - t.x[k])
		return y[k] + slope*(q-t.x[k])
	default:
		return 0
	}
}

// tangent returns dy/dx at sample i: one-sided at the ends, the mean of the
// adjacent secants elsewhere.
func (t *Table) tangent(y []float64, i int) float64 {
	n := len(t.x)
	secant := func(k int) float64 {
		return (y[k+1] - y[k]) / (t.x[k+1] - t.x[k])
	}
	switch i {
	case 0:
		return secant(0)
	case n - 1:
		return secant(n - 2)
	default:
		return 0.5 * (secant(i-1) + secant(i))
	}
}

func isUniform(x []float64) bool {
	step := x[1] - x[0]
	for i := 2; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-step) > uniformTolerance*math.Abs(step) {
			return false
		}
	}
	return true
}
