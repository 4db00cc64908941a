package session

import "github.com/vovakirdan/tui-2048/internal/grid"

// entry is one undo snapshot.
type entry struct {
	grid  grid.Grid
	score int
}

// history is a bounded LIFO of prior states. Pushing past capacity drops the
// oldest entry, so a capacity of 1 keeps only the most recent move.
type history struct {
	entries  []entry
	capacity int
}

func newHistory(capacity int) *history {
	if capacity < 1 {
		capacity = 1
	}
	return &history{capacity: capacity}
}

func (h *history) push(e entry) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, e)
}

func (h *history) pop() (entry, bool) {
	if len(h.entries) == 0 {
		return entry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *history) len() int {
	return len(h.entries)
}

func (h *history) reset() {
	h.entries = h.entries[:0]
}
