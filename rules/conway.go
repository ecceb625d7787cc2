package rules

/*
NewStatus applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with two or three live neighbours, a dead cell is born with
exactly three. Every other combination is dead.
*/
func NewStatus(alive bool, aliveNeighbors int) bool {
	if alive {
		return aliveNeighbors == 2 || aliveNeighbors == 3
	}
	return aliveNeighbors == 3
}
