// Package engine resolves a single 2048 move: it slides every tile along the
// chosen direction, merges equal neighbours and reports the score gained.
package engine

import (
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// WinValue is the tile value whose creation signals a win.
const WinValue = 2048

// Merge records one merge performed during a move.
type Merge struct {
	Pos   grid.Pos
	Value int
}

// Result is the outcome of resolving a move.
type Result struct {
	Grid            grid.Grid
	ScoreDelta      int
	Moved           bool
	ReachedWinValue bool // a merge produced WinValue this move
	Merges          []Merge
}

// Resolve applies dir to g and returns the resulting grid. The input grid is
// not modified. Fresh identities for merged tiles are drawn from ids.
func Resolve(g grid.Grid, dir grid.Direction, ids grid.IDSource) Result {
	res := Result{Grid: g}
	res.Grid.ClearMergeMarkers()

	vec := dir.Vector()
	rows, cols := traversal(vec)

	for _, r := range rows {
		for _, c := range cols {
			start := grid.Pos{Row: r, Col: c}
			if _, ok := res.Grid.At(start); !ok {
				continue
			}
			res.step(start, vec, ids)
		}
	}

	return res
}

// step slides the tile at pos until it hits the edge, a different value or a
// tile that already merged.
func (res *Result) step(pos grid.Pos, vec grid.Vector, ids grid.IDSource) {
	for {
		next := pos.Add(vec)
		if !grid.InBounds(next) {
			return
		}

		src, _ := res.Grid.At(pos)
		dst, occupied := res.Grid.At(next)

		if !occupied {
			res.Grid.Set(next, src)
			res.Grid.Clear(pos)
			res.Moved = true
			pos = next
			continue
		}

		if dst.Value != src.Value || dst.Merged() || src.Merged() {
			return
		}

		merged := grid.Tile{
			Value:      dst.Value * 2,
			ID:         ids.Next(),
			MergedFrom: []grid.Tile{dst, src},
		}
		res.Grid.Set(next, merged)
		res.Grid.Clear(pos)
		res.ScoreDelta += merged.Value
		res.Moved = true
		res.Merges = append(res.Merges, Merge{Pos: next, Value: merged.Value})

		if merged.Value == WinValue {
			res.ReachedWinValue = true
		}
		return
	}
}

// traversal returns the row and column visiting order. Cells are visited
// farthest-first along the move vector, so a tile never slides onto a cell
// that is still waiting to be visited. For up and left this is row-major.
// A plain row-major order would merge twice on right and down: [2 2 4 0]
// moved right would first make 4 next to the 4, then 8.
func traversal(vec grid.Vector) (rows, cols []int) {
	rows = make([]int, grid.Size)
	cols = make([]int, grid.Size)
	for i := range grid.Size {
		rows[i] = i
		cols[i] = i
	}
	if vec.DRow > 0 {
		reverse(rows)
	}
	if vec.DCol > 0 {
		reverse(cols)
	}
	return rows, cols
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// CanMove reports whether dir would change g.
func CanMove(g grid.Grid, dir grid.Direction) bool {
	var ids grid.Sequence
	return Resolve(g, dir, &ids).Moved
}
