package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell
from its current state and the number of living cells among its 8 neighbors.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
