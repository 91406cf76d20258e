package rules

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with fewer than two or more than three live neighbours dies, a dead
cell with exactly three live neighbours is born, every other cell keeps its state.
*/
func Next(alive bool, neighbours int) bool {
	switch {
	case alive && (neighbours < 2 || neighbours > 3):
		return false
	case !alive && neighbours == 3:
		return true
	default:
		return alive
	}
}
