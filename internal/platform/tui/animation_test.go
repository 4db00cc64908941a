package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

func TestPlanSlidesTracksIdentity(t *testing.T) {
	var ids grid.Sequence
	before := grid.FromValues([grid.Size][grid.Size]int{
		{2, 2, 0, 4},
		{0, 0, 0, 8},
	}, &ids)
	after := engine.Resolve(before, grid.Left, &ids).Grid
	spawned := grid.Pos{Row: 3, Col: 3}
	after.Place(grid.Spawn{Pos: spawned, Value: 2}, ids.Next())

	slides, pops := planSlides(before, after, &spawned)

	want := []tileSlide{
		{value: 2, from: grid.Pos{Row: 0, Col: 0}, to: grid.Pos{Row: 0, Col: 0}, merged: true},
		{value: 2, from: grid.Pos{Row: 0, Col: 1}, to: grid.Pos{Row: 0, Col: 0}, merged: true},
		{value: 4, from: grid.Pos{Row: 0, Col: 3}, to: grid.Pos{Row: 0, Col: 1}},
		{value: 8, from: grid.Pos{Row: 1, Col: 3}, to: grid.Pos{Row: 1, Col: 0}},
	}
	if len(slides) != len(want) {
		t.Fatalf("slides = %+v, want %+v", slides, want)
	}
	for i := range want {
		if slides[i] != want[i] {
			t.Errorf("slide %d = %+v, want %+v", i, slides[i], want[i])
		}
	}

	if len(pops) != 2 || !pops[grid.Pos{Row: 0, Col: 0}] || !pops[spawned] {
		t.Errorf("pops = %v, want merge cell and spawned cell", pops)
	}
}

func TestAnimationPhases(t *testing.T) {
	var ids grid.Sequence
	before := grid.FromValues([grid.Size][grid.Size]int{{0, 0, 0, 2}}, &ids)
	after := engine.Resolve(before, grid.Left, &ids).Grid
	spawned := grid.Pos{Row: 2, Col: 2}
	after.Place(grid.Spawn{Pos: spawned, Value: 2}, ids.Next())

	var a animation
	if cmd := a.start(before, after, &spawned); cmd == nil {
		t.Fatal("start should schedule a frame")
	}
	stale := frameMsg{gen: a.gen - 1}
	if cmd := a.advance(stale); cmd != nil || a.frame != 0 {
		t.Error("frames from an earlier animation should be ignored")
	}

	for range slideFrames {
		a.advance(frameMsg{gen: a.gen})
	}
	if a.phase != phasePop {
		t.Fatalf("phase = %v after the slide, want pop", a.phase)
	}
	if !a.popping(spawned) {
		t.Error("spawned tile should start small")
	}

	cmd := a.advance(frameMsg{gen: a.gen})
	for i := 1; i < popFrames; i++ {
		cmd = a.advance(frameMsg{gen: a.gen})
	}
	if cmd != nil || a.active() {
		t.Errorf("animation still running: phase %v frame %d", a.phase, a.frame)
	}
}

func TestAnimationWithoutPopsEndsAfterSlide(t *testing.T) {
	var ids grid.Sequence
	before := grid.FromValues([grid.Size][grid.Size]int{{0, 0, 0, 2}}, &ids)
	after := engine.Resolve(before, grid.Left, &ids).Grid

	var a animation
	a.start(before, after, nil)
	for range slideFrames {
		a.advance(frameMsg{gen: a.gen})
	}
	if a.active() {
		t.Error("nothing to pop, animation should end with the slide")
	}
}

func TestDrawBoardSlidingTile(t *testing.T) {
	var ids grid.Sequence
	before := grid.FromValues([grid.Size][grid.Size]int{{0, 0, 0, 2}}, &ids)
	after := engine.Resolve(before, grid.Left, &ids).Grid

	var a animation
	a.start(before, after, nil)

	snap := session.Snapshot{Grid: after, MaxTile: 2, State: session.StatePlaying}
	s := core.NewScreen(80, 30)
	drawGame(s, snap, testTheme(), nil, &a)

	board := boardRect(80)
	from := tileRect(board, grid.Pos{Row: 0, Col: 3})
	to := tileRect(board, grid.Pos{Row: 0, Col: 0})
	y := from.Y + tileHeight/2
	pad := (tileWidth - 1) / 2

	if got := s.GetCell(from.X+pad, y).Rune; got != '2' {
		t.Errorf("first frame should draw the tile at its old cell, got %q", got)
	}
	if got := s.GetCell(to.X+pad, y).Rune; got == '2' {
		t.Error("first frame drew the tile at its new cell")
	}

	for range slideFrames {
		a.advance(frameMsg{gen: a.gen})
	}
	drawGame(s, snap, testTheme(), nil, &a)
	if got := s.GetCell(to.X+pad, y).Rune; got != '2' {
		t.Errorf("finished slide should draw the tile at its new cell, got %q", got)
	}
}

func TestModelAnimatesMoves(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Seed = 42
	sess := session.New(cfg, nil, nil)
	m := NewModel(sess, Options{
		Width:         80,
		Height:        30,
		DragThreshold: 3,
		ToastDuration: time.Second,
		Animate:       true,
		Theme:         config.DefaultConfig().Theme,
	})

	_, cmd := m.Update(arrowKeys[movableDirection(t, sess)])
	if cmd == nil || m.anim.phase != phaseSlide {
		t.Fatalf("move should start a slide, phase %v", m.anim.phase)
	}
	if len(m.anim.slides) == 0 {
		t.Error("no tiles tracked across the move")
	}
	if m.View() == "" {
		t.Error("View() empty while animating")
	}

	for range slideFrames + popFrames {
		m.Update(frameMsg{gen: m.anim.gen})
	}
	if m.anim.active() {
		t.Errorf("animation did not finish: phase %v", m.anim.phase)
	}

	m.Update(arrowKeys[movableDirection(t, sess)])
	m.Update(runeKey('u'))
	if m.anim.active() {
		t.Error("undo should stop the animation")
	}
}

func TestModelWithoutAnimation(t *testing.T) {
	m, sess := newTestModel(t)
	m.Update(arrowKeys[movableDirection(t, sess)])
	if m.anim.active() {
		t.Error("animation started with Animate off")
	}
}
