package timepanel

import "github.com/charmbracelet/x/ansi"

// columnMeta is the horizontal placement of one column.
type columnMeta struct {
	Col      Column
	MinWidth int
	Weight   float64
	Width    int
	X        int
}

// columnGap separates neighbouring columns.
const columnGap = 1

func (m *Model) minWidthFor(col Column) int {
	w := 2
	switch col {
	case ColumnMillisecond:
		w = 3
	case ColumnMeridiem:
		w = max(ansi.StringWidth(m.opts.Locale.AnteMeridiem), ansi.StringWidth(m.opts.Locale.PostMeridiem))
	}
	return w + m.styles.Item.GetHorizontalFrameSize()
}

func weightFor(col Column) float64 {
	if col == ColumnMeridiem {
		return 1.5
	}
	return 1.0
}

// relayout recomputes column widths and each container's scroll limit.
func (m *Model) relayout() {
	cols := make([]columnMeta, len(m.cols))
	for i, col := range m.cols {
		cols[i] = columnMeta{Col: col, MinWidth: m.minWidthFor(col), Weight: weightFor(col)}
	}
	avail := m.width - columnGap*max(len(cols)-1, 0)
	m.layout = layoutColumns(cols, avail)

	g, ok := m.geometry()
	for _, col := range m.cols {
		c := m.containers[col]
		if !ok {
			c.max = 0
			continue
		}
		c.max = max(len(m.ColumnList(col))-1, 0) * g.Total()
		if c.offset > c.max {
			c.setOffset(c.max)
		}
	}
}

// layoutColumns gives each column its minimum width and hands out what is
// left by weight. Without a width, columns keep their minimum.
func layoutColumns(cols []columnMeta, totalWidth int) []columnMeta {
	minSum := 0
	weightSum := 0.0
	for i := range cols {
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	remaining := totalWidth - minSum
	x := 0
	for i := range cols {
		extra := 0
		if remaining > 0 && weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
		cols[i].X = x
		x += cols[i].Width + columnGap
	}
	return cols
}

// hitTest maps a screen cell to a column and a row inside the panel.
func (m *Model) hitTest(x, y int) (Column, int, bool) {
	rx, ry := x-m.originX, y-m.originY
	if ry < 0 || ry >= m.viewRows() || rx < 0 {
		return 0, 0, false
	}
	for _, meta := range m.layout {
		if rx >= meta.X && rx < meta.X+meta.Width {
			return meta.Col, ry, true
		}
	}
	return 0, 0, false
}

// ColumnSpan returns where col is drawn inside the panel view.
func (m *Model) ColumnSpan(col Column) (x, width int, ok bool) {
	for _, meta := range m.layout {
		if meta.Col == col {
			return meta.X, meta.Width, true
		}
	}
	return 0, 0, false
}
