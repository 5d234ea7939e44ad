package main

import (
	"fmt"

	"github.com/andareed/siftly-timepicker/logging"
	"github.com/andareed/siftly-timepicker/timepanel"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpToNow sets the value to the current time, rounded down onto the steps.
func (m *model) jumpToNow() tea.Cmd {
	t := timepanel.NewTime(m.clock.Now())
	steps := m.panel.Steps()
	for _, col := range m.panel.Columns() {
		if !col.IsTimeUnit() {
			continue
		}
		step := steps.Of(col)
		t = t.Set(col, t.Get(col)/step*step)
	}
	return m.jumpTo(t, "now")
}

// jumpToValue sets a typed value. It must match the format exactly.
func (m *model) jumpToValue(text string) tea.Cmd {
	logging.Debugf("jumpToValue: %q", text)
	if text == "" {
		return nil
	}
	t, ok := timepanel.ParseValue(text, m.panel.Format(), m.clock.Now())
	if !ok {
		return m.startNotice(fmt.Sprintf("%q does not match %s", text, m.panel.Format()), "warn", noticeDuration)
	}
	return m.jumpTo(t, text)
}

func (m *model) jumpTo(t timepanel.Time, label string) tea.Cmd {
	if fn := m.cfg.DisableFunc(); fn != nil {
		disabled := fn(t.Query(m.cfg.Position))
		for _, col := range m.panel.Columns() {
			if col.IsTimeUnit() && disabled.Contains(col, t.Get(col)) {
				return m.startNotice(fmt.Sprintf("%s is disabled (%s %02d)", label, col, t.Get(col)), "warn", noticeDuration)
			}
		}
	}
	value := t.Format(m.panel.Format())
	logging.Debugf("jumpTo: %q", value)
	return tea.Batch(m.setValue(value), m.startNotice("jumped to "+value, "info", noticeDuration))
}
