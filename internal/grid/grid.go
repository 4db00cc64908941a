// Package grid defines the 2048 board: tiles, positions, directions and the
// spawn and terminal-detection rules. It has no dependencies beyond the
// standard library so the engine and session stay pure and testable.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension. The board is always Size x Size.
const Size = 4

// TileID is an opaque identity carried by a tile across moves.
type TileID uint64

// Tile is a single numbered piece. The zero Tile denotes an empty cell.
type Tile struct {
	Value int
	ID    TileID

	// MergedFrom holds the destination and source tiles this tile was created
	// from during the current move. Cleared at the start of every move.
	MergedFrom []Tile
}

// Empty reports whether the tile represents an empty cell.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Merged reports whether the tile was produced by a merge this move.
func (t Tile) Merged() bool {
	return len(t.MergedFrom) > 0
}

// Pos is a cell position on the board.
type Pos struct {
	Row int
	Col int
}

// Add returns p shifted by v.
func (p Pos) Add(v Vector) Pos {
	return Pos{Row: p.Row + v.DRow, Col: p.Col + v.DCol}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether p lies on the board.
func InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Grid is the board value. Copying a Grid copies every cell, so a Grid can be
// handed out as a snapshot without aliasing the session's current board.
type Grid struct {
	cells [Size][Size]Tile
}

// New returns an empty grid.
func New() Grid {
	return Grid{}
}

// FromValues builds a grid from raw values, drawing identities from ids.
// Zero means empty. Panics on a value that is not a power of two >= 2.
func FromValues(values [Size][Size]int, ids IDSource) Grid {
	var g Grid
	for r := range Size {
		for c := range Size {
			v := values[r][c]
			if v == 0 {
				continue
			}
			if !ValidValue(v) {
				panic(fmt.Sprintf("grid: invalid tile value %d at (%d,%d)", v, r, c))
			}
			g.cells[r][c] = Tile{Value: v, ID: ids.Next()}
		}
	}
	return g
}

// ValidValue reports whether v is a legal tile value (a power of two >= 2).
func ValidValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// At returns the tile at p and whether the cell is occupied.
func (g Grid) At(p Pos) (Tile, bool) {
	if !InBounds(p) {
		return Tile{}, false
	}
	t := g.cells[p.Row][p.Col]
	return t, !t.Empty()
}

// Set places t at p. Panics if p is off the board.
func (g *Grid) Set(p Pos, t Tile) {
	if !InBounds(p) {
		panic(fmt.Sprintf("grid: position %v out of bounds", p))
	}
	g.cells[p.Row][p.Col] = t
}

// Clear empties the cell at p.
func (g *Grid) Clear(p Pos) {
	g.Set(p, Tile{})
}

// Place writes a freshly spawned tile with the given identity.
func (g *Grid) Place(s Spawn, id TileID) {
	g.Set(s.Pos, Tile{Value: s.Value, ID: id})
}

// ClearMergeMarkers drops the MergedFrom marker from every tile.
func (g *Grid) ClearMergeMarkers() {
	for r := range Size {
		for c := range Size {
			g.cells[r][c].MergedFrom = nil
		}
	}
}

// EmptyCells returns the empty positions in row-major order.
func (g Grid) EmptyCells() []Pos {
	var cells []Pos
	for r := range Size {
		for c := range Size {
			if g.cells[r][c].Empty() {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Full reports whether every cell is occupied.
func (g Grid) Full() bool {
	for r := range Size {
		for c := range Size {
			if g.cells[r][c].Empty() {
				return false
			}
		}
	}
	return true
}

// Values returns the raw values, zero for empty cells.
func (g Grid) Values() [Size][Size]int {
	var out [Size][Size]int
	for r := range Size {
		for c := range Size {
			out[r][c] = g.cells[r][c].Value
		}
	}
	return out
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g.cells[r][c].Value
		}
	}
	return total
}

// MaxValue returns the highest tile value on the board.
func (g Grid) MaxValue() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g.cells[r][c].Value > maxVal {
				maxVal = g.cells[r][c].Value
			}
		}
	}
	return maxVal
}

// String renders the values as an aligned matrix, "." for empty cells.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.MaxValue()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := g.cells[r][c].Value; v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
