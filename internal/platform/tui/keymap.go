package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/input"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Undo    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings: arrows, WASD and hjkl move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "n"),
			key.WithHelp("r/n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key press to a command.
func (k KeyMap) Command(msg tea.KeyMsg) (input.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return input.Move(grid.Up), true
	case key.Matches(msg, k.Down):
		return input.Move(grid.Down), true
	case key.Matches(msg, k.Left):
		return input.Move(grid.Left), true
	case key.Matches(msg, k.Right):
		return input.Move(grid.Right), true
	case key.Matches(msg, k.Undo):
		return input.Undo, true
	case key.Matches(msg, k.Restart):
		return input.Restart, true
	case key.Matches(msg, k.Help):
		return input.ToggleHelp, true
	case key.Matches(msg, k.Quit):
		return input.Quit, true
	}
	return input.Command{}, false
}

// msgHandler is an attached adapter that consumes Bubble Tea messages.
type msgHandler interface {
	Handle(msg tea.Msg) bool
}

// KeyAdapter emits commands for key presses.
type KeyAdapter struct {
	keys KeyMap
	emit input.Sink
}

// NewKeyAdapter creates a keyboard adapter with the given bindings.
func NewKeyAdapter(keys KeyMap) *KeyAdapter {
	return &KeyAdapter{keys: keys}
}

// Attach implements input.Adapter.
func (a *KeyAdapter) Attach(emit input.Sink) { a.emit = emit }

// Detach implements input.Adapter.
func (a *KeyAdapter) Detach() { a.emit = nil }

// Handle emits a command if msg is a bound key. It reports whether msg was
// consumed.
func (a *KeyAdapter) Handle(msg tea.Msg) bool {
	km, ok := msg.(tea.KeyMsg)
	if !ok || a.emit == nil {
		return false
	}
	cmd, ok := a.keys.Command(km)
	if !ok {
		return false
	}
	a.emit(cmd)
	return true
}

// MouseAdapter turns left-button drags into moves. Distances are in
// terminal cells.
type MouseAdapter struct {
	pointer *input.PointerAdapter
}

// NewMouseAdapter creates a mouse adapter with the given drag threshold.
func NewMouseAdapter(threshold float64) *MouseAdapter {
	return &MouseAdapter{pointer: input.NewPointerAdapter(threshold)}
}

// Attach implements input.Adapter.
func (a *MouseAdapter) Attach(emit input.Sink) { a.pointer.Attach(emit) }

// Detach implements input.Adapter.
func (a *MouseAdapter) Detach() { a.pointer.Detach() }

// Handle consumes left-button presses and the release that ends a drag.
// Some terminals report releases without a button, so any release counts
// while a drag is in progress.
func (a *MouseAdapter) Handle(msg tea.Msg) bool {
	mm, ok := msg.(tea.MouseMsg)
	if !ok {
		return false
	}

	pt := input.Point{X: float64(mm.X), Y: float64(mm.Y)}
	switch {
	case mm.Action == tea.MouseActionPress && mm.Button == tea.MouseButtonLeft:
		a.pointer.Press(pt)
		return true
	case mm.Action == tea.MouseActionRelease && a.pointer.Dragging():
		a.pointer.Release(pt)
		return true
	}
	return false
}
