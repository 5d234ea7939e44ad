package timepanel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnList(t *testing.T) {
	m := newTestPanel(t, Options{Format: "HH:mm:ss", Value: "14:05:30"})
	hours := m.ColumnList(ColumnHour)
	assert.Len(t, hours, 24)
	assert.Equal(t, "00", hours[0])
	assert.Equal(t, "23", hours[23])
	assert.Equal(t, []string{"AM", "PM"}, m.ColumnList(ColumnMeridiem))

	m = newTestPanel(t, Options{Format: "hh:mm a"})
	hours = m.ColumnList(ColumnHour)
	assert.Len(t, hours, 12)
	assert.Equal(t, "11", hours[11])
}

func TestColumnListSteps(t *testing.T) {
	m := newTestPanel(t, Options{Format: "HH:mm:ss.SSS", Steps: Steps{1, 5, 1, 100}})
	assert.Equal(t, []string{"00", "05", "10", "15", "20", "25", "30", "35", "40", "45", "50", "55"}, m.ColumnList(ColumnMinute))
	assert.Equal(t, []string{"00", "100", "200", "300", "400", "500", "600", "700", "800", "900"}, m.ColumnList(ColumnMillisecond))
}

func TestColumnListHidesDisabled(t *testing.T) {
	m := newTestPanel(t, Options{Format: "HH:mm", Value: "09:00", DisableTime: disableHours(13)})
	assert.Contains(t, m.ColumnList(ColumnHour), "13")
	assert.False(t, m.TimeItemCanUsed(ColumnHour, 13))

	m.SetHideDisabledTime(true)
	assert.NotContains(t, m.ColumnList(ColumnHour), "13")
	assert.Len(t, m.ColumnList(ColumnHour), 23)
	assert.False(t, m.TimeItemCanUsed(ColumnHour, 13))
	assert.True(t, m.TimeItemCanUsed(ColumnHour, 12))
}

func TestDisableQueryCarriesPartial(t *testing.T) {
	var got DisableQuery
	m := newTestPanel(t, Options{
		Format:   "HH:mm:ss",
		Value:    "10:20:30",
		Position: PositionEnd,
		DisableTime: func(q DisableQuery) DisabledSet {
			got = q
			return nil
		},
	})
	assert.True(t, m.TimeItemCanUsed(ColumnMinute, 45))
	assert.Equal(t, DisableQuery{Hour: 10, Minute: 45, Second: 30, Partial: PositionEnd}, got)

	m = newTestPanel(t, Options{
		Format: "HH:mm:ss",
		DisableTime: func(q DisableQuery) DisabledSet {
			got = q
			return nil
		},
	})
	m.TimeItemCanUsed(ColumnHour, 3)
	assert.Equal(t, PositionStart, got.Partial)
}

func TestClosestLookup(t *testing.T) {
	v, ok := closestLookup([]int{0, 5, 10}, 7, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	v, _ = closestLookup([]int{0, 5, 10}, 8, 5)
	assert.Equal(t, 10, v)

	v, _ = closestLookup([]int{0, 4}, 2, 4)
	assert.Equal(t, 0, v, "ties go to the lower value")

	v, _ = closestLookup(nil, 13, 1)
	assert.Equal(t, 13, v, "step 1 returns the value untouched")

	_, ok = closestLookup(nil, 3, 5)
	assert.False(t, ok)
}
