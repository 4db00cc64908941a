package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/session"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// toast is a transient notification line.
type toast struct {
	id   int
	kind toastKind
	text string
}

// toastExpiredMsg dismisses the toast with the given id.
type toastExpiredMsg struct {
	id int
}

// toasts holds the visible notifications, newest last.
type toasts struct {
	items  []toast
	nextID int
	ttl    time.Duration
	max    int
}

func newToasts(ttl time.Duration) *toasts {
	return &toasts{ttl: ttl, max: 2}
}

// push shows a toast and returns the command that dismisses it.
func (t *toasts) push(kind toastKind, text string) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, toast{id: id, kind: kind, text: text})
	if len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
	return tea.Tick(t.ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// pushEvent shows a session event.
func (t *toasts) pushEvent(ev session.Event) tea.Cmd {
	kind := toastInfo
	switch ev.Kind {
	case session.EventWon:
		kind = toastSuccess
	case session.EventGameOver:
		kind = toastError
	}
	return t.push(kind, ev.Message)
}

func (t *toasts) expire(id int) {
	for i, it := range t.items {
		if it.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

func (t *toasts) clear() {
	t.items = nil
}

func (t *toasts) visible() []toast {
	return t.items
}
