package timepanel

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// wheelItems is how far one wheel notch moves a column.
const wheelItems = 1

// TimeItemCanUsed reports whether v may be selected in col given the rest of
// the current time. The meridiem column is always usable.
func (m *Model) TimeItemCanUsed(col Column, v int) bool {
	if !col.IsTimeUnit() || m.opts.DisableTime == nil {
		return true
	}
	q := m.current.Query(m.partial())
	switch col {
	case ColumnHour:
		q.Hour = v
	case ColumnMinute:
		q.Minute = v
	case ColumnSecond:
		q.Second = v
	case ColumnMillisecond:
		q.Millisecond = v
	}
	return !m.opts.DisableTime(q).Contains(col, v)
}

// IsCurrent reports whether item is the selected entry of col.
func (m *Model) IsCurrent(col Column, item string) bool {
	if !m.current.Valid() {
		return false
	}
	if !col.IsTimeUnit() {
		return normalizeMeridiem(item) == m.current.Meridiem()
	}
	n, err := strconv.Atoi(strings.TrimSpace(item))
	if err != nil {
		return false
	}
	cur := m.current.Get(col)
	if col == ColumnHour && m.twelveHour {
		cur %= 12
	}
	return n == cur
}

// OnScroll resolves the settled offset of col into a value. A new formatted
// value is reported through ChangeMsg, and the column is eased onto its
// item when it came to rest between two.
func (m *Model) OnScroll(col Column, src Gesture) tea.Cmd {
	c := m.containers[col]
	if c == nil {
		return nil
	}
	// the burst is over whether or not it resolves to a value
	m.states[col] = StateSynced
	if !m.visible {
		return nil
	}
	observed := c.offset + m.opts.TopInset
	val := m.ValueFor(col, observed)
	distance := m.DistanceFor(col, val)

	if !m.current.Valid() {
		return nil
	}
	if m.opts.Value != "" && !strictValid(m.opts.Value, m.opts.Format, m.now()) {
		return nil
	}

	var next Time
	if col.IsTimeUnit() {
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil
		}
		next = m.current
		if m.TimeItemCanUsed(col, n) {
			next = m.current.Set(col, n)
		}
	} else {
		next = m.withMeridiem(val)
	}

	var cmds []tea.Cmd
	if formatted := next.Format(m.opts.Format); formatted != m.opts.Value {
		cmds = append(cmds, m.emit(formatted, col, src))
	}
	if distance != observed && c.offset != distance {
		cmds = append(cmds, c.scrollTo(distance, ScrollSmooth))
	}
	return tea.Batch(cmds...)
}

// OnItemClick handles a click on item in col. Time units scroll to the
// clicked entry and commit it; the meridiem column flips the hour by twelve.
func (m *Model) OnItemClick(col Column, item string) tea.Cmd {
	return m.onItemClick(col, item, Gesture{Kind: GestureClick})
}

func (m *Model) onItemClick(col Column, item string, src Gesture) tea.Cmd {
	if !col.IsTimeUnit() {
		if !m.current.Valid() {
			return nil
		}
		next := m.withMeridiem(normalizeMeridiem(item))
		if next.Equal(m.current) {
			return nil
		}
		return m.emit(next.Format(m.opts.Format), col, src)
	}

	n, err := strconv.Atoi(strings.TrimSpace(item))
	if err != nil || !m.TimeItemCanUsed(col, n) {
		return nil
	}
	if col == ColumnHour && m.hasMeridiem && m.current.Meridiem() == PM {
		n += 12
	}
	cmds := []tea.Cmd{m.scrollToTime(col, strconv.Itoa(n), ScrollSmooth)}
	if m.current.Valid() && m.TimeItemCanUsed(col, n) {
		if formatted := m.current.Set(col, n).Format(m.opts.Format); formatted != m.opts.Value {
			cmds = append(cmds, m.emit(formatted, col, src))
		}
	}
	return tea.Batch(cmds...)
}

// withMeridiem moves the current hour into the half of the day named by mer.
func (m *Model) withMeridiem(mer string) Time {
	hour := m.current.Hour()
	switch {
	case mer == AM && hour >= 12:
		return m.current.Set(ColumnHour, hour-12)
	case mer == PM && hour < 12:
		return m.current.Set(ColumnHour, hour+12)
	}
	return m.current
}

// ScrollBy moves col by a number of items as a user drag would.
func (m *Model) ScrollBy(col Column, items int) tea.Cmd {
	return m.scrollItems(col, items, Gesture{Kind: GestureScroll})
}

// scrollItems moves col by whole item pitches, margins included.
func (m *Model) scrollItems(col Column, items int, src Gesture) tea.Cmd {
	g, ok := m.geometry()
	if !ok {
		return nil
	}
	return m.scrollRows(col, items*g.Total(), src)
}

// ScrollTo places col at offset as a user drag would.
func (m *Model) ScrollTo(col Column, offset int) tea.Cmd {
	c := m.containers[col]
	if c == nil {
		return nil
	}
	return m.scrollRows(col, offset-c.offset, Gesture{Kind: GestureScroll})
}

func (m *Model) scrollRows(col Column, delta int, src Gesture) tea.Cmd {
	c := m.containers[col]
	if c == nil || !c.setOffset(c.offset+delta) {
		return nil
	}
	m.states[col] = StateDragging
	return m.scrolled(col, src)
}

// scrolled is called whenever a column's offset changes, whatever moved it.
func (m *Model) scrolled(col Column, src Gesture) tea.Cmd {
	return m.debounce.trigger(col, src)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	col, row, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}
	src := Gesture{Kind: GestureScroll, Mouse: &msg}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollItems(col, -wheelItems, src)
	case tea.MouseButtonWheelDown:
		return m.scrollItems(col, wheelItems, src)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		item, ok := m.itemAt(col, row)
		if !ok {
			return nil
		}
		src.Kind = GestureClick
		return m.onItemClick(col, item, src)
	}
	return nil
}
