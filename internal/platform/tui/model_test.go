package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

func newTestModel(t *testing.T) (*Model, *session.Session) {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Seed = 42
	sess := session.New(cfg, nil, nil)
	m := NewModel(sess, Options{
		Width:         80,
		Height:        30,
		DragThreshold: 3,
		ToastDuration: time.Second,
		Theme:         config.DefaultConfig().Theme,
	})
	return m, sess
}

var arrowKeys = map[grid.Direction]tea.KeyMsg{
	grid.Up:    {Type: tea.KeyUp},
	grid.Down:  {Type: tea.KeyDown},
	grid.Left:  {Type: tea.KeyLeft},
	grid.Right: {Type: tea.KeyRight},
}

func movableDirection(t *testing.T, sess *session.Session) grid.Direction {
	t.Helper()
	for _, d := range grid.Directions {
		if engine.CanMove(sess.Grid(), d) {
			return d
		}
	}
	t.Fatal("no legal move on a fresh board")
	return grid.Up
}

func TestModelKeyMove(t *testing.T) {
	m, sess := newTestModel(t)
	dir := movableDirection(t, sess)

	m.Update(arrowKeys[dir])

	if got := sess.Snapshot().Moves; got != 1 {
		t.Errorf("Moves = %d after one key press, want 1", got)
	}
	if len(m.pending) != 0 {
		t.Errorf("pending commands left after Update: %v", m.pending)
	}
}

func TestModelMouseDrag(t *testing.T) {
	m, sess := newTestModel(t)
	dir := movableDirection(t, sess)

	v := dir.Vector()
	start := tea.MouseMsg{X: 40, Y: 15, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	end := tea.MouseMsg{
		X:      40 + v.DCol*10,
		Y:      15 + v.DRow*10,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	}

	m.Update(start)
	m.Update(end)

	if got := sess.Snapshot().Moves; got != 1 {
		t.Errorf("Moves = %d after a drag %v, want 1", got, dir)
	}
}

func TestModelUndoWithoutHistory(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runeKey('u'))
	if cmd == nil {
		t.Error("expected a toast dismissal command")
	}

	notes := m.toasts.visible()
	if len(notes) != 1 || notes[0].text != "Nothing to undo" {
		t.Fatalf("toasts = %+v", notes)
	}

	m.Update(toastExpiredMsg{id: notes[0].id})
	if len(m.toasts.visible()) != 0 {
		t.Error("toast not dismissed")
	}
}

func TestModelUndoAfterMove(t *testing.T) {
	m, sess := newTestModel(t)
	before := sess.Snapshot()

	m.Update(arrowKeys[movableDirection(t, sess)])
	m.Update(runeKey('u'))

	after := sess.Snapshot()
	if after.Grid.Values() != before.Grid.Values() || after.Score != before.Score {
		t.Error("undo did not restore the board")
	}
	if len(m.toasts.visible()) != 0 {
		t.Errorf("unexpected toasts: %+v", m.toasts.visible())
	}
}

func TestModelRestart(t *testing.T) {
	m, sess := newTestModel(t)
	m.Update(arrowKeys[movableDirection(t, sess)])
	m.toasts.push(toastInfo, "stale")

	m.Update(runeKey('r'))

	snap := sess.Snapshot()
	if snap.Moves != 0 || snap.Score != 0 {
		t.Errorf("restart left moves=%d score=%d", snap.Moves, snap.Score)
	}
	if len(m.toasts.visible()) != 0 {
		t.Error("restart should clear toasts")
	}
}

func TestModelToggleHelp(t *testing.T) {
	m, _ := newTestModel(t)
	shortHeight := m.screen.Height()

	m.Update(runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("help not expanded")
	}
	if m.screen.Height() >= shortHeight {
		t.Errorf("board area should shrink for full help: %d >= %d", m.screen.Height(), shortHeight)
	}

	m.Update(runeKey('?'))
	if m.help.ShowAll || m.screen.Height() != shortHeight {
		t.Error("help toggle did not restore the short view")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
	if m.screen.Height() != 40-m.footerHeight() {
		t.Errorf("screen height = %d, want %d", m.screen.Height(), 40-m.footerHeight())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting {
		t.Error("model not quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
	if len(m.dispatcher.Adapters()) != 0 {
		t.Error("adapters should be detached on quit")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()

	for _, want := range []string{"2048", "Score", "Best", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
