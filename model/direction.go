package model

// Direction identifies one of the 8 cells adjacent to a grid position.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Offset is a relative (Δx, Δy) step on the grid.
type Offset struct {
	X int
	Y int
}

// AllDirections returns every direction in a fixed order so that
// neighbor walks stay deterministic.
func AllDirections() [8]Direction {
	return [8]Direction{
		North,
		NorthEast,
		East,
		SouthEast,
		South,
		SouthWest,
		West,
		NorthWest,
	}
}

// Offset returns the grid step for the direction. North is the
// positive-y side.
func (d Direction) Offset() Offset {
	switch d {
	case North:
		return Offset{X: 0, Y: 1}
	case NorthEast:
		return Offset{X: 1, Y: 1}
	case East:
		return Offset{X: 1, Y: 0}
	case SouthEast:
		return Offset{X: 1, Y: -1}
	case South:
		return Offset{X: 0, Y: -1}
	case SouthWest:
		return Offset{X: -1, Y: -1}
	case West:
		return Offset{X: -1, Y: 0}
	default:
		return Offset{X: -1, Y: 1} // NorthWest
	}
}
