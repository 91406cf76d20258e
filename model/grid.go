package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const historySize = 5

// Source supplies the randomness used by Randomize
type Source interface {
	IntN(n int) int
}

// Grid is a fixed-size toroidal lattice of cells. The left edge neighbours the
// right edge and the top edge neighbours the bottom edge.
type Grid struct {
	columns  int
	rows     int
	cellSize int

	// cells holds the current generation, indexed by x + y*columns
	cells     []bool
	populated bool
	// shared is set once cells has been handed out in a Generation
	shared bool

	history []string // recent generation hashes for cycle detection
}

// NewGrid creates an unpopulated grid with the specified dimensions
func NewGrid(columns, rows, cellSize int) (*Grid, error) {
	if columns <= 0 || rows <= 0 || cellSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension,
			"[NewGrid] columns=%d rows=%d cellSize=%d", columns, rows, cellSize)
	}
	return &Grid{
		columns:  columns,
		rows:     rows,
		cellSize: cellSize,
	}, nil
}

// Columns returns the width of the grid in cells
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the height of the grid in cells
func (g *Grid) Rows() int {
	return g.rows
}

// CellSize returns the pixel size of one cell
func (g *Grid) CellSize() int {
	return g.cellSize
}

// Populated reports whether the grid holds a generation
func (g *Grid) Populated() bool {
	return g.populated
}

func (g *Grid) index(x, y int) int {
	return x + y*g.columns
}

func (g *Grid) check(op string, x, y int) error {
	if !g.populated {
		return errors.Wrapf(ErrUninitializedGrid, "[%s]", op)
	}
	if x < 0 || x >= g.columns || y < 0 || y >= g.rows {
		return errors.Wrapf(ErrOutOfRange,
			"[%s] (%d,%d) outside %dx%d grid", op, x, y, g.columns, g.rows)
	}
	return nil
}

// commit replaces the current generation wholesale
func (g *Grid) commit(cells []bool) {
	g.cells = cells
	g.populated = true
	g.shared = false
}

// Randomize replaces every cell with a live cell with probability one half
func (g *Grid) Randomize(src Source) {
	cells := make([]bool, g.columns*g.rows)
	for i := range cells {
		cells[i] = src.IntN(2) == 1
	}
	g.commit(cells)
	g.history = nil
}

// Clear replaces every cell with a dead cell
func (g *Grid) Clear() {
	g.commit(make([]bool, g.columns*g.rows))
	g.history = nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if err := g.check("Set", x, y); err != nil {
		return err
	}
	if g.shared {
		g.commit(append([]bool(nil), g.cells...))
	}
	g.cells[g.index(x, y)] = alive
	return nil
}

// StateAt returns whether the cell at (x, y) is alive
func (g *Grid) StateAt(x, y int) (bool, error) {
	if err := g.check("StateAt", x, y); err != nil {
		return false, err
	}
	return g.cells[g.index(x, y)], nil
}

// CountNeighbours counts the live cells among the eight neighbours of (x, y),
// wrapping around the edges of the grid
func (g *Grid) CountNeighbours(x, y int) (int, error) {
	if err := g.check("CountNeighbours", x, y); err != nil {
		return 0, err
	}
	return g.countNeighbours(x, y), nil
}

func (g *Grid) countNeighbours(x, y int) int {
	count := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			nx := (x + i + g.columns) % g.columns
			ny := (y + j + g.rows) % g.rows
			if g.cells[g.index(nx, ny)] {
				count++
			}
		}
	}
	// the scan above includes the cell itself
	if g.cells[g.index(x, y)] {
		count--
	}
	return count
}

// Evolve computes the next generation from the current one and commits it in
// a single step. The current generation is only read while the next is built.
func (g *Grid) Evolve() (Generation, error) {
	if !g.populated {
		return Generation{}, errors.Wrap(ErrUninitializedGrid, "[Evolve]")
	}
	next := make([]bool, len(g.cells))
	for y := range g.rows {
		for x := range g.columns {
			idx := g.index(x, y)
			next[idx] = rules.Next(g.cells[idx], g.countNeighbours(x, y))
		}
	}
	g.commit(next)
	return g.Snapshot(), nil
}

// Snapshot returns the current generation. The snapshot is not affected by
// later changes to the grid.
func (g *Grid) Snapshot() Generation {
	g.shared = true
	return Generation{columns: g.columns, rows: g.rows, cells: g.cells}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current generation
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current generation to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three recorded generations, i.e. the grid is static or in a short cycle
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}
	current := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if g.history[len(g.history)-back] == current {
			return true
		}
	}
	return false
}
