package timepanel

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 5, 9, 41, 27, 0, time.UTC)

// unit is the test item pitch: one row of text and one blank row.
var unit = FixedMeasurer{ItemHeight: 1, ItemMargin: 1}

func newTestPanel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Measurer == nil {
		opts.Measurer = unit
	}
	if opts.Clock == nil {
		opts.Clock = FixedClock{T: testNow}
	}
	m := New(opts)
	require.NotNil(t, m)
	return m
}

// synced returns a visible panel whose columns have been moved to value.
func synced(t *testing.T, format, value string) *Model {
	t.Helper()
	m := newTestPanel(t, Options{Format: format, Value: value, Visible: true})
	m, _ = m.Update(m.Init()())
	return m
}

// collect runs cmd and every command batched inside it.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func changes(msgs []tea.Msg) []ChangeMsg {
	var out []ChangeMsg
	for _, msg := range msgs {
		if c, ok := msg.(ChangeMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

// settle drives the animation of col to rest.
func settle(t *testing.T, m *Model, col Column) {
	t.Helper()
	c := m.containers[col]
	for i := 0; c.animating; i++ {
		require.Less(t, i, 1000, "animation did not settle")
		m.Update(scrollFrameMsg{col: col, gen: c.gen})
	}
}

func disableHours(hours ...int) DisableFunc {
	return func(DisableQuery) DisabledSet {
		return DisabledSet{ColumnHour: hours}
	}
}
