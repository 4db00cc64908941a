package input

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// DefaultSwipeThreshold is the minimum displacement, in pointer units,
// for a gesture to count as a move.
const DefaultSwipeThreshold = 50

// Point is a pointer position. Y grows downward.
type Point struct {
	X, Y float64
}

// Decode maps a displacement to a direction. It reports false when both
// components are below threshold. The larger axis wins; ties go vertical.
func Decode(dx, dy, threshold float64) (grid.Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < threshold && ay < threshold {
		return 0, false
	}
	if ax > ay {
		if dx > 0 {
			return grid.Right, true
		}
		return grid.Left, true
	}
	if dy > 0 {
		return grid.Down, true
	}
	return grid.Up, true
}

// Tracker follows one press-release gesture.
type Tracker struct {
	threshold float64
	start     Point
	active    bool
}

// NewTracker returns a tracker. A non-positive threshold uses
// DefaultSwipeThreshold.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Tracker{threshold: threshold}
}

// Begin records the gesture start, replacing any gesture in progress.
func (t *Tracker) Begin(p Point) {
	t.start = p
	t.active = true
}

// End finishes the gesture at p and decodes it. Ending without a start
// reports false. The gesture is cleared either way.
func (t *Tracker) End(p Point) (grid.Direction, bool) {
	if !t.active {
		return 0, false
	}
	t.active = false
	return Decode(p.X-t.start.X, p.Y-t.start.Y, t.threshold)
}

// Cancel drops any gesture in progress.
func (t *Tracker) Cancel() {
	t.active = false
}

// Active reports whether a gesture has begun and not ended.
func (t *Tracker) Active() bool {
	return t.active
}
