package timepanel

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduleSync returns a command that runs a synchronisation pass once the
// current update has been rendered. auto forces instant scrolling.
func (m *Model) scheduleSync(auto bool) tea.Cmd {
	id := m
	return func() tea.Msg {
		return syncMsg{id: id, auto: auto}
	}
}

// TriggerScroll re-synchronises every column with the current time and
// acknowledges the request with ScrollTriggerResetMsg.
func (m *Model) TriggerScroll() tea.Cmd {
	return tea.Batch(
		m.scheduleSync(true),
		func() tea.Msg { return ScrollTriggerResetMsg{} },
	)
}

// runSync scrolls each column to the entry for the current time. Without a
// value but with steps in use, each column goes to its first entry instead.
func (m *Model) runSync(auto bool) tea.Cmd {
	if _, ok := m.geometry(); !ok {
		m.pendingSync = true
		m.pendingAuto = m.pendingAuto || auto
		return nil
	}
	m.pendingSync, m.pendingAuto = false, false
	m.relayout()

	behavior := ScrollInstant
	if m.opts.Value != "" && !auto {
		behavior = ScrollSmooth
	}
	toCurrent := !m.opts.Steps.IsSet() || m.opts.Value != ""

	var cmds []tea.Cmd
	for _, col := range m.cols {
		var item string
		switch {
		case !toCurrent:
			list := m.ColumnList(col)
			if len(list) == 0 {
				continue
			}
			item = list[0]
		case col.IsTimeUnit():
			item = strconv.Itoa(m.current.Get(col))
		default:
			item = m.current.Meridiem()
		}
		cmds = append(cmds, m.scrollToTime(col, item, behavior))
		if m.states[col] != StateDragging {
			m.states[col] = StateSynced
		}
	}
	return tea.Batch(cmds...)
}

// scrollToTime moves col so item sits under the selection mask. Nothing
// happens if the column is already there or item is disabled.
func (m *Model) scrollToTime(col Column, item string, behavior ScrollBehavior) tea.Cmd {
	c := m.containers[col]
	if c == nil {
		return nil
	}
	distance := m.DistanceFor(col, item)
	if c.animating && c.target == distance {
		return nil
	}
	if !c.animating && c.offset == distance {
		return nil
	}
	if col.IsTimeUnit() {
		if n, err := strconv.Atoi(item); err == nil && !m.TimeItemCanUsed(col, n) {
			return nil
		}
	}

	before := c.offset
	cmd := c.scrollTo(distance, behavior)
	if behavior == ScrollInstant && c.offset != before {
		return m.scrolled(col, Gesture{Kind: GestureScroll})
	}
	return cmd
}
