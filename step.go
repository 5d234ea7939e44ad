package main

import (
	"fmt"

	"github.com/andareed/siftly-timepicker/logging"
	"github.com/andareed/siftly-timepicker/timepanel"
	tea "github.com/charmbracelet/bubbletea"
)

// stepLimits caps how far a unit's step can be doubled.
var stepLimits = map[timepanel.Column]int{
	timepanel.ColumnHour:        12,
	timepanel.ColumnMinute:      30,
	timepanel.ColumnSecond:      30,
	timepanel.ColumnMillisecond: 500,
}

// adjustStep doubles or halves the step of col, clamped to [1, limit].
// Non-time columns are returned unchanged.
func adjustStep(steps timepanel.Steps, col timepanel.Column, increase bool) timepanel.Steps {
	limit, ok := stepLimits[col]
	if !ok {
		return steps
	}
	idx := stepIndex(col)
	step := steps[idx]
	if step <= 0 {
		step = 1
	}
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	steps[idx] = clamp(step, 1, limit)
	return steps
}

func stepIndex(col timepanel.Column) int {
	switch col {
	case timepanel.ColumnMinute:
		return 1
	case timepanel.ColumnSecond:
		return 2
	case timepanel.ColumnMillisecond:
		return 3
	default:
		return 0
	}
}

func (m *model) adjustFocusedStep(increase bool) tea.Cmd {
	col, ok := m.focusedColumn()
	if !ok || !col.IsTimeUnit() {
		return nil
	}
	before := m.panel.Steps()
	after := adjustStep(before, col, increase)
	if after == before {
		return m.startNotice(fmt.Sprintf("%s step already at %d", col, after.Of(col)), "warn", noticeDuration)
	}
	logging.Debugf("adjustFocusedStep: %s step %d -> %d", col, before.Of(col), after.Of(col))
	m.panel.SetSteps(after)
	m.triggerScroll = true
	return tea.Batch(
		m.panel.TriggerScroll(),
		m.startNotice(fmt.Sprintf("%s step %d", col, after.Of(col)), "info", noticeDuration),
	)
}

func stepsLabel(s timepanel.Steps) string {
	return fmt.Sprintf("%d/%d/%d/%d", s[0], s[1], s[2], s[3])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
