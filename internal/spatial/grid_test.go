package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(g *Grid, x, y float64) []int {
	var out []int
	g.QueryAround(x, y, func(i int) bool {
		out = append(out, i)
		return false
	})
	return out
}

func TestGridDims(t *testing.T) {
	g := NewGrid(800, 600, 50)
	cols, rows := g.Dims()
	assert.Equal(t, 16, cols)
	assert.Equal(t, 12, rows)
	assert.Equal(t, 50.0, g.CellSize())

	g.Resize(10, 10, 0)
	cols, rows = g.Dims()
	assert.Equal(t, 1, cols, "non-positive cell size collapses to one cell")
	assert.Equal(t, 1, rows)
}

func TestGridNeighborhood(t *testing.T) {
	g := NewGrid(300, 300, 100)
	g.Insert(50, 50, 0)   // cell (0,0)
	g.Insert(150, 150, 1) // cell (1,1)
	g.Insert(250, 250, 2) // cell (2,2)

	assert.ElementsMatch(t, []int{0, 1}, collect(g, 10, 10), "corner sees its neighbors only")
	assert.ElementsMatch(t, []int{0, 1, 2}, collect(g, 150, 150))
	assert.ElementsMatch(t, []int{1, 2}, collect(g, 299, 299), "no wrap-around at the far edge")
}

func TestGridEarlyStopAndClear(t *testing.T) {
	g := NewGrid(100, 100, 50)
	for i := 0; i < 5; i++ {
		g.Insert(10, 10, i)
	}

	seen := 0
	g.QueryAround(10, 10, func(int) bool {
		seen++
		return seen == 2
	})
	assert.Equal(t, 2, seen)

	g.Clear()
	assert.Empty(t, collect(g, 10, 10))
}

func TestGridClampsOutsidePositions(t *testing.T) {
	g := NewGrid(100, 100, 50)
	g.Insert(-20, 500, 7)
	assert.Equal(t, []int{7}, collect(g, 0, 100))
}
