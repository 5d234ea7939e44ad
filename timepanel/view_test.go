package timepanel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rendered builds a panel measured from its own styles, one row per item.
func rendered(t *testing.T, format, value string, locale Locale) *Model {
	t.Helper()
	m := New(Options{Format: format, Value: value, Locale: locale, Visible: true, Clock: FixedClock{T: testNow}})
	m.SetSize(20, 7)
	m.Update(m.Init()())
	return m
}

func viewLines(m *Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestViewCentresSelection(t *testing.T) {
	m := rendered(t, "HH:mm:ss", "14:05:30", Locale{})
	lines := viewLines(m)
	require.Len(t, lines, 7)

	assert.Equal(t, []string{"14", "05", "30"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"13", "04", "29"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"11", "02", "27"}, strings.Fields(lines[0]))
	for _, l := range lines {
		assert.Equal(t, 20, ansi.StringWidth(l))
	}
}

func TestViewTwelveHourLabels(t *testing.T) {
	m := rendered(t, "hh:mm A", "12:30 AM", Locale{})
	lines := viewLines(m)
	assert.Equal(t, []string{"12", "30", "AM"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"01", "31", "PM"}, strings.Fields(lines[4]))

	m = rendered(t, "hh:mm A", "12:30 PM", Locale{AnteMeridiem: "vorm.", PostMeridiem: "nachm."})
	lines = viewLines(m)
	assert.Contains(t, lines[3], "nachm.")
	assert.Contains(t, lines[2], "vorm.")
}

func TestViewBeforeLayout(t *testing.T) {
	m := New(Options{Format: "HH:mm"})
	assert.Empty(t, m.View())
}

func TestMouseWheel(t *testing.T) {
	m := rendered(t, "HH:mm:ss", "14:05:30", Locale{})
	m.SetOrigin(0, 0)

	_, cmd := m.Update(tea.MouseMsg{X: 8, Y: 0, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.NotNil(t, cmd)
	assert.Equal(t, 6, m.Offset(ColumnMinute))
	assert.Equal(t, StateDragging, m.State(ColumnMinute))

	m.Update(tea.MouseMsg{X: 8, Y: 0, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 5, m.Offset(ColumnMinute))

	_, cmd = m.Update(tea.MouseMsg{X: 100, Y: 0, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Nil(t, cmd)
}

func TestMouseWheelResolvesValue(t *testing.T) {
	tests := []struct {
		name   string
		margin int
		button tea.MouseButton
		offset int
		want   string
	}{
		{name: "down without margin", margin: 0, button: tea.MouseButtonWheelDown, offset: 6, want: "14:06:30"},
		{name: "up without margin", margin: 0, button: tea.MouseButtonWheelUp, offset: 4, want: "14:04:30"},
		{name: "down with margin", margin: 1, button: tea.MouseButtonWheelDown, offset: 12, want: "14:06:30"},
		{name: "up with margin", margin: 1, button: tea.MouseButtonWheelUp, offset: 8, want: "14:04:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPanel(t, Options{
				Format:   "HH:mm:ss",
				Value:    "14:05:30",
				Visible:  true,
				Measurer: FixedMeasurer{ItemHeight: 1, ItemMargin: tt.margin},
			})
			m.SetSize(20, 7)
			m.SetOrigin(0, 0)
			m.Update(m.Init()())

			_, cmd := m.Update(tea.MouseMsg{X: 8, Y: 0, Button: tt.button, Action: tea.MouseActionPress})
			require.NotNil(t, cmd)
			assert.Equal(t, tt.offset, m.Offset(ColumnMinute))

			_, cmd = m.Update(scrollSettledMsg{col: ColumnMinute, seq: m.debounce.seq[ColumnMinute]})
			got := changes(collect(cmd))
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Value)
			assert.Equal(t, ColumnMinute, got[0].Column)

			settle(t, m, ColumnMinute)
			assert.Equal(t, tt.offset, m.Offset(ColumnMinute))
			assert.Equal(t, StateSynced, m.State(ColumnMinute))
		})
	}
}

func TestMouseClick(t *testing.T) {
	m := rendered(t, "HH:mm:ss", "14:05:30", Locale{})
	m.SetOrigin(2, 5)

	_, cmd := m.Update(tea.MouseMsg{X: 3, Y: 9, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	got := changes(collect(cmd))
	require.Len(t, got, 1)
	assert.Equal(t, "15:05:30", got[0].Value)
	assert.Equal(t, GestureClick, got[0].Gesture.Kind)
	require.NotNil(t, got[0].Gesture.Mouse)
	assert.Equal(t, 3, got[0].Gesture.Mouse.X)

	_, cmd = m.Update(tea.MouseMsg{X: 3, Y: 9, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Nil(t, cmd)
}

func TestLayoutColumns(t *testing.T) {
	cols := layoutColumns([]columnMeta{
		{Col: ColumnHour, MinWidth: 4, Weight: 1},
		{Col: ColumnMeridiem, MinWidth: 4, Weight: 1},
	}, 14)
	assert.Equal(t, 7, cols[0].Width)
	assert.Equal(t, 7, cols[1].Width)
	assert.Equal(t, 8, cols[1].X)

	cols = layoutColumns([]columnMeta{{Col: ColumnHour, MinWidth: 4, Weight: 1}}, 2)
	assert.Equal(t, 4, cols[0].Width)
}

func TestColumnSpan(t *testing.T) {
	m := rendered(t, "HH:mm:ss", "14:05:30", Locale{})

	x, w, ok := m.ColumnSpan(ColumnMinute)
	require.True(t, ok)
	assert.Equal(t, 7, x)
	assert.Equal(t, 6, w)

	_, _, ok = m.ColumnSpan(ColumnMeridiem)
	assert.False(t, ok)
}
