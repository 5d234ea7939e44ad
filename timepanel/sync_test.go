package timepanel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSyncScrollsToValue(t *testing.T) {
	m := synced(t, "HH:mm:ss", "14:05:30")
	assert.Equal(t, 28, m.Offset(ColumnHour))
	assert.Equal(t, 10, m.Offset(ColumnMinute))
	assert.Equal(t, 60, m.Offset(ColumnSecond))
	for _, col := range m.Columns() {
		assert.Equal(t, StateSynced, m.State(col), col.String())
		assert.False(t, m.containers[col].animating)
	}
}

func TestInitialSyncWithoutValue(t *testing.T) {
	m := newTestPanel(t, Options{Format: "HH:mm:ss", Visible: true})
	m.Update(m.Init()())
	assert.Equal(t, 18, m.Offset(ColumnHour), "no steps: follow the clock")
	assert.Equal(t, 82, m.Offset(ColumnMinute))

	m = newTestPanel(t, Options{Format: "HH:mm:ss", Steps: Steps{1, 5, 1, 1}, Visible: true})
	assert.Equal(t, []string{"00", "05", "10", "15", "20", "25", "30", "35", "40", "45", "50", "55"}, m.ColumnList(ColumnMinute))
	m.Update(m.Init()())
	for _, col := range m.Columns() {
		assert.Equal(t, 0, m.Offset(col), col.String())
		assert.Equal(t, StateSynced, m.State(col))
	}
}

func TestSetValueResyncs(t *testing.T) {
	m := synced(t, "HH:mm:ss", "14:05:30")

	cmd := m.SetValue("08:45:00")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, syncMsg{}, msg)
	m.Update(msg)

	assert.Equal(t, 16, m.Offset(ColumnHour))
	assert.Equal(t, 90, m.Offset(ColumnMinute))
	assert.Equal(t, 0, m.Offset(ColumnSecond))
	assert.Equal(t, "08:45:00", m.Value())
}

func TestSetValueNoop(t *testing.T) {
	m := synced(t, "HH:mm:ss", "14:05:30")
	assert.Nil(t, m.SetValue("14:05:30"))

	assert.Nil(t, m.SetValue("garbage"))
	assert.False(t, m.Current().Valid())
	assert.Equal(t, 28, m.Offset(ColumnHour))

	assert.Nil(t, m.SetValue(""))
	assert.True(t, m.Current().Valid())
}

func TestSyncMsgForOtherPanel(t *testing.T) {
	a := synced(t, "HH:mm", "14:05")
	b := newTestPanel(t, Options{Format: "HH:mm", Value: "03:00"})
	a.Update(b.Init()())
	assert.Equal(t, 28, a.Offset(ColumnHour))
	assert.Equal(t, 0, b.Offset(ColumnHour))
}

func TestSyncWaitsForLayout(t *testing.T) {
	m := New(Options{Format: "HH:mm", Value: "14:05", Clock: FixedClock{T: testNow}})
	m.Update(m.Init()())
	assert.Equal(t, 0, m.Offset(ColumnHour))
	assert.Equal(t, StateUninitialized, m.State(ColumnHour))

	cmd := m.SetSize(20, 7)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 14, m.Offset(ColumnHour))
	assert.Equal(t, 5, m.Offset(ColumnMinute))
	assert.Nil(t, m.SetSize(20, 9), "nothing left to sync")
}

func TestTriggerScroll(t *testing.T) {
	m := synced(t, "HH:mm", "14:05")
	m.ScrollTo(ColumnHour, 4)

	var sync syncMsg
	var acked bool
	for _, msg := range collect(m.TriggerScroll()) {
		switch msg := msg.(type) {
		case syncMsg:
			sync = msg
		case ScrollTriggerResetMsg:
			acked = true
		}
	}
	assert.True(t, acked)
	require.NotNil(t, sync.id)
	assert.True(t, sync.auto)

	m.Update(sync)
	assert.Equal(t, 28, m.Offset(ColumnHour))
}

func TestSmoothSync(t *testing.T) {
	m := synced(t, "HH:mm", "14:05")
	m.ScrollTo(ColumnHour, 4)

	m.runSync(false)
	c := m.containers[ColumnHour]
	assert.True(t, c.animating)
	assert.Equal(t, 28, c.target)

	settle(t, m, ColumnHour)
	assert.Equal(t, 28, m.Offset(ColumnHour))
}

func TestSetFormatKeepsColumns(t *testing.T) {
	m := synced(t, "HH:mm", "14:05")
	cmd := m.SetFormat("hh:mm")
	require.NotNil(t, cmd)
	assert.Equal(t, []Column{ColumnHour, ColumnMinute}, m.Columns())
	assert.Len(t, m.ColumnList(ColumnHour), 12)

	m.Update(cmd())
	assert.Equal(t, 4, m.Offset(ColumnHour))
}

func TestSyncSkipsDisabledTarget(t *testing.T) {
	m := newTestPanel(t, Options{Format: "HH:mm", Value: "13:00", Visible: true, DisableTime: disableHours(13)})
	m.Update(m.Init()())
	assert.Equal(t, 0, m.Offset(ColumnHour))
}
