package grid

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Vector is a unit step over (row, col).
type Vector struct {
	DRow int
	DCol int
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() Vector {
	switch d {
	case Up:
		return Vector{DRow: -1}
	case Down:
		return Vector{DRow: 1}
	case Left:
		return Vector{DCol: -1}
	case Right:
		return Vector{DCol: 1}
	default:
		return Vector{}
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names and their initials (u, d, l, r).
// Vim keys are not accepted since "l" would be ambiguous.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}
