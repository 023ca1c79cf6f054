// Package game holds the snake simulation: grid positions, the snake body,
// food placement and the board state machine that applies one tick at a time
//
// The package performs no I/O. Rendering consumes Board.Diff output
package game

// Position is a grid coordinate, row 0 is the top frame row
type Position struct {
	Row int
	Col int
}

// Add returns p offset by d
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Direction is the snake heading
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Offset returns the unit step for the direction
func (d Direction) Offset() Position {
	switch d {
	case DirUp:
		return Position{Row: -1}
	case DirDown:
		return Position{Row: 1}
	case DirLeft:
		return Position{Col: -1}
	default:
		return Position{Col: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}
