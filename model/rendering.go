package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	gridPosBlock = '█'
)

// Surface is a 2D drawing target addressed in pixels
type Surface interface {
	// FillRect fills a size x size square with its top-left corner at (x, y)
	FillRect(x, y, size int)
}

// Paint draws every live cell of g onto s as a square of the grid's cell size.
// Dead cells are left to the surface background.
func Paint(g *Grid, s Surface) error {
	for y := range g.rows {
		for x := range g.columns {
			alive, err := g.StateAt(x, y)
			if err != nil {
				return err
			}
			if alive {
				s.FillRect(x*g.cellSize, y*g.cellSize, g.cellSize)
			}
		}
	}
	return nil
}

// Status is the line of run information shown above the grid
type Status struct {
	Generation int
	Living     int
	Density    float64
	State      string
}

func (s Status) String() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.Generation, s.Living, s.Density, s.State)
}

// TerminalRenderer draws the grid onto a terminal screen, two columns per cell
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalRenderer wraps an initialised screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Display renders the status line and the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid, status Status) error {
	r.screen.Clear()
	for i, ch := range status.String() {
		r.screen.SetContent(i, 0, ch, nil, r.style)
	}
	if err := Paint(g, r.surface(g.cellSize)); err != nil {
		return err
	}
	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) surface(cellSize int) Surface {
	return terminalSurface{screen: r.screen, style: r.style, cellSize: cellSize}
}

// terminalSurface maps pixel squares back onto terminal cells, leaving the
// first row for the status line
type terminalSurface struct {
	screen   tcell.Screen
	style    tcell.Style
	cellSize int
}

func (s terminalSurface) FillRect(x, y, _ int) {
	col := x / s.cellSize * 2
	row := y/s.cellSize + 1
	s.screen.SetContent(col, row, gridPosBlock, nil, s.style)
	s.screen.SetContent(col+1, row, gridPosBlock, nil, s.style)
}
