package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTristim2CC(t *testing.T) {
	assert.Equal(t, Coord{1, 0}, Tristim2CC(Tristim{2, 0, 0}))
	assert.Equal(t, Coord{0, 1}, Tristim2CC(Tristim{0, 0.5, 0}))
	assert.Equal(t, Coord{0, 0}, Tristim2CC(Tristim{0, 0, 7}))
	assert.Equal(t, Coord{0.25, 0.5}, Tristim2CC(Tristim{1, 2, 1}))
}

func TestTristim2CCZeroSum(t *testing.T) {
	assert.Equal(t, Coord{}, Tristim2CC(Tristim{}))
	assert.Equal(t, Coord{}, Tristim2CC(Tristim{1, -1, 0}))
}

func TestTristim2CCRows(t *testing.T) {
	got := Tristim2CCRows([]Tristim{{1, 0, 0}, {0, 1, 0}, {1, 1, 2}})
	assert.Equal(t, []Coord{{1, 0}, {0, 1}, {0.25, 0.25}}, got)
	assert.Empty(t, Tristim2CCRows(nil))
}

func TestCoordZ(t *testing.T) {
	assert.InDelta(t, 0.5, Coord{0.25, 0.25}.Z(), 1e-15)
	assert.Equal(t, 4.0, Tristim{1, 1, 2}.Sum())
}
