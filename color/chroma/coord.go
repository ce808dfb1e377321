package chroma

// Coord is a chromaticity coordinate pair such as (r, g) or (x, y).
type Coord [2]float64

// Tristim is a tristimulus triple such as (R, G, B) or (X, Y, Z).
type Tristim [3]float64

// Sum returns the sum of the three channels.
func (t Tristim) Sum() float64 {
	return t[0] + t[1] + t[2]
}

// Z returns the implied third coordinate 1 - c0 - c1.
func (c Coord) Z() float64 {
	return 1 - c[0] - c[1]
}

// Tristim2CC normalises t by its channel sum and returns the first two
// coordinates. A zero sum yields (0, 0).
func Tristim2CC(t Tristim) Coord {
	sum := t.Sum()
	if sum == 0 {
		return Coord{}
	}
	return Coord{t[0] / sum, t[1] / sum}
}

// Tristim2CCRows applies Tristim2CC to every row of an N×3 table.
func Tristim2CCRows(rows []Tristim) []Coord {
	out := make([]Coord, len(rows))
	for i, t := range rows {
		out[i] = Tristim2CC(t)
	}
	return out
}
