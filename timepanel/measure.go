package timepanel

import "github.com/charmbracelet/lipgloss"

// Geometry is the measured size of one list item, in rows.
type Geometry struct {
	ItemHeight int
	ItemMargin int
}

// Total is the distance between the tops of two neighbouring items.
func (g Geometry) Total() int {
	return g.ItemHeight + g.ItemMargin
}

// Measurer reports item geometry once the panel has been laid out.
type Measurer interface {
	Measure() (Geometry, bool)
}

// FixedMeasurer always reports the same geometry.
type FixedMeasurer Geometry

func (f FixedMeasurer) Measure() (Geometry, bool) {
	return Geometry(f), true
}

// styleMeasurer derives geometry from the rendered item style. It reports
// nothing until the owning panel has a size.
type styleMeasurer struct {
	panel *Model
}

func (s styleMeasurer) Measure() (Geometry, bool) {
	if s.panel == nil || s.panel.height <= 0 {
		return Geometry{}, false
	}
	st := s.panel.styles.Item
	margin := st.GetMarginTop()
	rendered := st.Render("00")
	return Geometry{
		ItemHeight: lipgloss.Height(rendered) - margin,
		ItemMargin: margin,
	}, true
}

func (m *Model) geometry() (Geometry, bool) {
	g, ok := m.measurer.Measure()
	if !ok || g.Total() <= 0 {
		return Geometry{}, false
	}
	return g, true
}
