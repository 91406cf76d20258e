package model

// stamp sets the listed cells alive relative to (startX, startY), wrapping
// around the grid edges
func (g *Grid) stamp(startX, startY int, offsets [][2]int) error {
	for _, o := range offsets {
		x := ((startX+o[0])%g.columns + g.columns) % g.columns
		y := ((startY+o[1])%g.rows + g.rows) % g.rows
		if err := g.Set(x, y, true); err != nil {
			return err
		}
	}
	return nil
}

// AddGlider adds a south-east travelling glider with its bounding box at (startX, startY)
func (g *Grid) AddGlider(startX, startY int) error {
	return g.stamp(startX, startY, [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

// AddBlinker adds a horizontal blinker oscillator starting at (startX, startY)
func (g *Grid) AddBlinker(startX, startY int) error {
	return g.stamp(startX, startY, [][2]int{{0, 0}, {1, 0}, {2, 0}})
}

// AddBlock adds a 2x2 block still life with its top-left cell at (startX, startY)
func (g *Grid) AddBlock(startX, startY int) error {
	return g.stamp(startX, startY, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
}
