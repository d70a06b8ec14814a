package spatial

import "math"

// Grid is a uniform grid for broad-phase collision detection in a walled
// arena. Items are inserted by position and index, then nearby items are
// found through a 3x3 cell neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// items so that every potential contact is found within the neighborhood.
type Grid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between ticks (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewGrid creates a grid covering [0,width]x[0,height].
func NewGrid(width, height, cellSize float64) *Grid {
	g := &Grid{}
	g.Resize(width, height, cellSize)
	return g
}

// Resize changes the grid geometry and clears it. Cell memory is kept when
// the cell count does not grow.
func (g *Grid) Resize(width, height, cellSize float64) {
	if !(cellSize > 0) {
		cellSize = math.Max(width, height)
		if !(cellSize > 0) {
			cellSize = 1
		}
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g.cellSize = cellSize
	g.invCellSize = 1.0 / cellSize
	g.cols = cols
	g.rows = rows

	n := cols * rows
	if cap(g.cells) < n {
		g.cells = make([]gridCell, n)
	}
	g.cells = g.cells[:n]
	g.Clear()
}

// CellSize returns the edge length of one cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
// Positions outside the grid land in the nearest edge cell.
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. Neighbors past the arena edge are skipped.
// If fn returns true, iteration stops early.
func (g *Grid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts coordinates to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *Grid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
