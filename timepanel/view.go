package timepanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewRows is the height of the rendered panel.
func (m *Model) viewRows() int {
	if m.height > 0 {
		return m.height
	}
	if g, ok := m.geometry(); ok {
		return m.opts.VisibleItems * g.Total()
	}
	return m.opts.VisibleItems
}

// maskRow is the first row of the selection mask.
func (m *Model) maskRow(g Geometry) int {
	return max((m.viewRows()-g.ItemHeight)/2, 0)
}

// itemAt returns the entry of col drawn on row, if any.
func (m *Model) itemAt(col Column, row int) (string, bool) {
	g, ok := m.geometry()
	c := m.containers[col]
	if !ok || c == nil {
		return "", false
	}
	k := row + c.offset - m.maskRow(g)
	if k < 0 || k%g.Total() >= g.ItemHeight {
		return "", false
	}
	list := m.ColumnList(col)
	i := k / g.Total()
	if i >= len(list) {
		return "", false
	}
	return list[i], true
}

// label is the text shown for item.
func (m *Model) label(col Column, item string) string {
	switch {
	case col == ColumnHour && m.twelveHour && item == "00":
		return "12"
	case col == ColumnMeridiem && strings.EqualFold(item, AM):
		return m.opts.Locale.AnteMeridiem
	case col == ColumnMeridiem && strings.EqualFold(item, PM):
		return m.opts.Locale.PostMeridiem
	}
	return item
}

func (m *Model) itemStyle(col Column, item string) lipgloss.Style {
	st := m.styles.Item.UnsetMargins()
	if col.IsTimeUnit() {
		if n, ok := atoi(item); ok && !m.TimeItemCanUsed(col, n) {
			return m.styles.Disabled.Inherit(st)
		}
	}
	if m.IsCurrent(col, item) {
		return m.styles.Current.Inherit(st)
	}
	return st
}

// View renders every column with the selected entry on the mask row.
func (m *Model) View() string {
	g, ok := m.geometry()
	if !ok || len(m.cols) == 0 {
		return ""
	}
	rows := m.viewRows()
	mask := m.maskRow(g)
	gap := strings.Repeat(" ", columnGap)

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		masked := r >= mask && r < mask+g.ItemHeight
		cells := make([]string, 0, len(m.layout))
		for _, meta := range m.layout {
			text := ""
			st := m.styles.Item.UnsetMargins()
			if item, ok := m.itemAt(meta.Col, r); ok {
				st = m.itemStyle(meta.Col, item)
				c := m.containers[meta.Col]
				if (r+c.offset-mask)%g.Total() == 0 {
					text = m.label(meta.Col, item)
				}
			}
			if masked {
				st = m.styles.Mask.Inherit(st)
			}
			cells = append(cells, st.Width(meta.Width).MaxWidth(meta.Width).Align(lipgloss.Center).Render(text))
		}
		lines[r] = strings.Join(cells, gap)
	}
	return strings.Join(lines, "\n")
}
