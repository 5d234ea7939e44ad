package timepanel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ScrollDebounce is how long a column must be quiet before a scroll is
// resolved to a value.
const ScrollDebounce = 50 * time.Millisecond

// scrollSettledMsg fires once a column's scroll burst is over.
type scrollSettledMsg struct {
	col Column
	seq uint64
	src Gesture
}

// debouncer tags each scroll with a per-column sequence number. Only the
// tick carrying the latest number for its column is acted on.
type debouncer struct {
	window  time.Duration
	seq     map[Column]uint64
	waiting map[Column]bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		seq:     make(map[Column]uint64),
		waiting: make(map[Column]bool),
	}
}

func (d *debouncer) trigger(col Column, src Gesture) tea.Cmd {
	d.seq[col]++
	d.waiting[col] = true
	seq := d.seq[col]
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return scrollSettledMsg{col: col, seq: seq, src: src}
	})
}

// accept reports whether msg is the latest for its column and clears it.
func (d *debouncer) accept(msg scrollSettledMsg) bool {
	if !d.waiting[msg.col] || d.seq[msg.col] != msg.seq {
		return false
	}
	d.waiting[msg.col] = false
	return true
}
