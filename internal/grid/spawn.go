package grid

import "math/rand"

// DefaultFourProbability is the chance a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.10

// IDSource hands out tile identities.
type IDSource interface {
	Next() TileID
}

// Sequence is a monotonic IDSource. The zero value starts at 1.
type Sequence struct {
	last TileID
}

// Next returns the next identity.
func (s *Sequence) Next() TileID {
	s.last++
	return s.last
}

// Spawn describes where a new tile goes and its value.
type Spawn struct {
	Pos   Pos
	Value int
}

// PickSpawn chooses an empty cell uniformly at random and a value of 2 or 4.
// Returns false when the grid is full. The grid is not modified.
func PickSpawn(g Grid, rng *rand.Rand, fourProb float64) (Spawn, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Spawn{}, false
	}

	pos := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	return Spawn{Pos: pos, Value: value}, true
}

// HasAnyLegalMove reports whether any cell is empty or any two orthogonally
// adjacent tiles share a value.
func HasAnyLegalMove(g Grid) bool {
	for r := range Size {
		for c := range Size {
			val := g.cells[r][c].Value
			if val == 0 {
				return true
			}
			// Right and bottom neighbours cover every adjacent pair once
			if c < Size-1 && g.cells[r][c+1].Value == val {
				return true
			}
			if r < Size-1 && g.cells[r+1][c].Value == val {
				return true
			}
		}
	}
	return false
}
