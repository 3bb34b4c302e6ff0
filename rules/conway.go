package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell:

  - alive with 0 or 1 neighbors dies (underpopulation)
  - alive with 2 or 3 neighbors survives
  - alive with 4+ neighbors dies (overpopulation)
  - dead with exactly 3 neighbors becomes alive (reproduction)

which reduces to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
