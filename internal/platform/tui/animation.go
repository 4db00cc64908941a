package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Animation timing
const (
	frameInterval = time.Second / 60
	slideFrames   = 8 // ~133ms at 60fps
	popFrames     = 6 // ~100ms at 60fps
)

// animPhase is the current phase of a move animation.
type animPhase int

const (
	phaseNone animPhase = iota
	phaseSlide
	phasePop
)

// tileSlide is one tile travelling from its cell before the move to its
// cell after it.
type tileSlide struct {
	value  int
	from   grid.Pos
	to     grid.Pos
	merged bool // consumed by a merge at to
}

// frameMsg advances the animation started as generation gen.
type frameMsg struct {
	gen int
}

// animation plays the slide of every moved tile, then pops the merged and
// spawned tiles.
type animation struct {
	phase  animPhase
	frame  int
	gen    int
	slides []tileSlide
	pops   map[grid.Pos]bool
}

// planSlides matches tiles by identity across a move. Merged tiles slide
// both of their sources into the merge cell. The spawned tile does not
// slide; it pops with the merged ones.
func planSlides(before, after grid.Grid, spawned *grid.Pos) ([]tileSlide, map[grid.Pos]bool) {
	origin := make(map[grid.TileID]grid.Pos)
	for r := range grid.Size {
		for c := range grid.Size {
			p := grid.Pos{Row: r, Col: c}
			if t, ok := before.At(p); ok {
				origin[t.ID] = p
			}
		}
	}

	var slides []tileSlide
	pops := make(map[grid.Pos]bool)
	for r := range grid.Size {
		for c := range grid.Size {
			p := grid.Pos{Row: r, Col: c}
			t, ok := after.At(p)
			if !ok {
				continue
			}
			if spawned != nil && *spawned == p {
				pops[p] = true
				continue
			}
			if t.Merged() {
				pops[p] = true
				for _, src := range t.MergedFrom {
					if from, ok := origin[src.ID]; ok {
						slides = append(slides, tileSlide{value: src.Value, from: from, to: p, merged: true})
					}
				}
				continue
			}
			if from, ok := origin[t.ID]; ok {
				slides = append(slides, tileSlide{value: t.Value, from: from, to: p})
			}
		}
	}
	return slides, pops
}

// start begins animating the move from before to after. Frames from an
// earlier animation are ignored from now on.
func (a *animation) start(before, after grid.Grid, spawned *grid.Pos) tea.Cmd {
	a.gen++
	a.slides, a.pops = planSlides(before, after, spawned)
	a.phase = phaseSlide
	a.frame = 0
	return a.tick()
}

// stop drops the animation so the board is drawn as is.
func (a *animation) stop() {
	a.gen++
	a.phase = phaseNone
	a.frame = 0
	a.slides = nil
	a.pops = nil
}

func (a *animation) active() bool {
	return a.phase != phaseNone
}

func (a *animation) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// advance moves one frame forward and returns the next tick, or nil once
// the animation has finished.
func (a *animation) advance(msg frameMsg) tea.Cmd {
	if msg.gen != a.gen || !a.active() {
		return nil
	}

	a.frame++
	if a.frame < a.duration() {
		return a.tick()
	}

	if a.phase == phaseSlide && len(a.pops) > 0 {
		a.phase = phasePop
		a.frame = 0
		return a.tick()
	}
	a.stop()
	return nil
}

func (a *animation) duration() int {
	if a.phase == phasePop {
		return popFrames
	}
	return slideFrames
}

// progress returns how far the current phase is, from 0 to 1.
func (a *animation) progress() float64 {
	if !a.active() {
		return 1
	}
	return min(float64(a.frame)/float64(a.duration()), 1)
}

// sliding reports whether tiles are still travelling.
func (a *animation) sliding() bool {
	return a != nil && a.phase == phaseSlide
}

// popping reports whether the tile at p is in its pop phase and still
// drawn small.
func (a *animation) popping(p grid.Pos) bool {
	return a != nil && a.phase == phasePop && a.pops[p] && a.progress() < 0.5
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// lerp returns the cell coordinate between from and to at eased progress t.
func lerp(from, to int, t float64) int {
	return from + int(math.Round(float64(to-from)*easeOutQuad(t)))
}
