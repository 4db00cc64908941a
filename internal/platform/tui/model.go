package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/input"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// Options configures the game model.
type Options struct {
	Width, Height int
	DragThreshold float64
	ToastDuration time.Duration
	Animate       bool // slide and pop tiles after each move
	Theme         config.ThemeConfig
	Logger        *log.Logger
}

// Model is the Bubble Tea model for one game session. It is the only
// caller of the session's mutating methods.
type Model struct {
	sess       *session.Session
	screen     *core.Screen
	theme      Theme
	styles     styleCache
	keys       KeyMap
	help       help.Model
	dispatcher *input.Dispatcher
	detach     []func()
	pending    []input.Command
	toasts     *toasts
	animate    bool
	anim       animation
	logger     *log.Logger
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model driving sess. Keyboard and mouse adapters are
// attached to the model's dispatcher.
func NewModel(sess *session.Session, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}

	h := help.New()
	h.ShowAll = false

	m := &Model{
		sess:    sess,
		screen:  core.NewScreen(0, 0),
		theme:   NewTheme(opts.Theme),
		styles:  styleCache{},
		keys:    DefaultKeyMap(),
		help:    h,
		toasts:  newToasts(opts.ToastDuration),
		animate: opts.Animate,
		logger:  opts.Logger,
	}
	m.resize(opts.Width, opts.Height)

	m.dispatcher = input.NewDispatcher(func(c input.Command) {
		m.pending = append(m.pending, c)
	})
	m.Attach(NewKeyAdapter(m.keys))
	m.Attach(NewMouseAdapter(opts.DragThreshold))

	return m
}

// Attach connects another input adapter. Adapters that also consume Bubble
// Tea messages receive every message the model gets.
func (m *Model) Attach(a input.Adapter) (detach func()) {
	d := m.dispatcher.Attach(a)
	m.detach = append(m.detach, d)
	return d
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil

	case frameMsg:
		return m, m.anim.advance(msg)
	}

	for _, a := range m.dispatcher.Adapters() {
		if h, ok := a.(msgHandler); ok && h.Handle(msg) {
			break
		}
	}

	return m, m.flush()
}

// flush applies queued commands in order.
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.pending) > 0 {
		c := m.pending[0]
		m.pending = m.pending[1:]
		cmds = append(cmds, m.apply(c))
	}
	return tea.Batch(cmds...)
}

func (m *Model) apply(c input.Command) tea.Cmd {
	switch c.Kind {
	case input.CmdMove:
		before := m.sess.Grid()
		out := m.sess.Move(c.Dir)
		var cmds []tea.Cmd
		if out.Moved && m.animate {
			snap := m.sess.Snapshot()
			cmds = append(cmds, m.anim.start(before, snap.Grid, snap.Spawned))
		}
		for _, ev := range out.Events {
			cmds = append(cmds, m.toasts.pushEvent(ev))
		}
		return tea.Batch(cmds...)

	case input.CmdUndo:
		if !m.sess.Undo() {
			return m.toasts.push(toastInfo, "Nothing to undo")
		}
		m.anim.stop()
		return nil

	case input.CmdRestart:
		m.sess.Restart()
		m.anim.stop()
		m.toasts.clear()
		m.logger.Info("restart", "best", m.sess.Best())
		return nil

	case input.CmdToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return nil

	case input.CmdQuit:
		m.quitting = true
		for _, d := range m.detach {
			d()
		}
		m.detach = nil
		return tea.Quit
	}
	return nil
}

// footerHeight is the number of lines taken by the help view.
func (m *Model) footerHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.screen.Resize(w, core.Max(h-m.footerHeight(), 0))
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.sess.Snapshot(), m.theme, m.toasts.visible(), &m.anim)

	var sb strings.Builder
	sb.WriteString(renderScreen(m.screen, m.styles))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for sess.
func Run(sess *session.Session, opts Options) error {
	model := NewModel(sess, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags move tiles
	)

	_, err := p.Run()
	return err
}
