package model

import "github.com/pkg/errors"

// Generation is a read-only snapshot of one complete set of cell states
type Generation struct {
	columns int
	rows    int
	cells   []bool
}

// Columns returns the width of the generation
func (g Generation) Columns() int {
	return g.columns
}

// Rows returns the height of the generation
func (g Generation) Rows() int {
	return g.rows
}

// Len returns the number of cells in the generation
func (g Generation) Len() int {
	return len(g.cells)
}

// StateAt reports whether the cell at (x, y) is alive
func (g Generation) StateAt(x, y int) (bool, error) {
	if g.cells == nil {
		return false, errors.Wrap(ErrUninitializedGrid, "[Generation.StateAt]")
	}
	if x < 0 || x >= g.columns || y < 0 || y >= g.rows {
		return false, errors.Wrapf(ErrOutOfRange,
			"[Generation.StateAt] (%d,%d) outside %dx%d generation", x, y, g.columns, g.rows)
	}
	return g.cells[x+y*g.columns], nil
}

// Living returns the number of live cells
func (g Generation) Living() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}
