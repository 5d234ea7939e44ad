package timepanel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollContainerClamp(t *testing.T) {
	c := newScrollContainer(ColumnMinute)
	c.max = 100
	assert.True(t, c.setOffset(500))
	assert.Equal(t, 100, c.offset)
	assert.True(t, c.setOffset(-5))
	assert.Equal(t, 0, c.offset)
	assert.False(t, c.setOffset(0))
}

func TestScrollContainerInstant(t *testing.T) {
	c := newScrollContainer(ColumnMinute)
	c.max = 100
	assert.Nil(t, c.scrollTo(40, ScrollInstant))
	assert.Equal(t, 40, c.offset)
	assert.False(t, c.animating)
}

func TestScrollContainerSmooth(t *testing.T) {
	c := newScrollContainer(ColumnMinute)
	c.max = 100
	require.NotNil(t, c.scrollTo(40, ScrollSmooth))
	require.True(t, c.animating)

	frames := 0
	for c.animating {
		frames++
		require.Less(t, frames, 1000)
		c.step(c.gen)
	}
	assert.Equal(t, 40, c.offset)
	assert.Greater(t, frames, 1)

	moved, next := c.step(c.gen)
	assert.False(t, moved)
	assert.Nil(t, next)
}

func TestScrollContainerDragCancelsAnimation(t *testing.T) {
	c := newScrollContainer(ColumnMinute)
	c.max = 100
	c.scrollTo(80, ScrollSmooth)
	stale := c.gen
	c.step(stale)

	c.setOffset(10)
	assert.False(t, c.animating)
	moved, next := c.step(stale)
	assert.False(t, moved)
	assert.Nil(t, next)
	assert.Equal(t, 10, c.offset)
}

func TestDebouncerLatestWins(t *testing.T) {
	d := newDebouncer(ScrollDebounce)
	assert.NotNil(t, d.trigger(ColumnHour, Gesture{}))
	first := d.seq[ColumnHour]
	d.trigger(ColumnHour, Gesture{})
	second := d.seq[ColumnHour]
	d.trigger(ColumnMinute, Gesture{})

	assert.True(t, d.waiting[ColumnHour])
	assert.False(t, d.accept(scrollSettledMsg{col: ColumnHour, seq: first}))
	assert.True(t, d.accept(scrollSettledMsg{col: ColumnHour, seq: second}))
	assert.False(t, d.waiting[ColumnHour])
	assert.False(t, d.accept(scrollSettledMsg{col: ColumnHour, seq: second}))

	assert.True(t, d.accept(scrollSettledMsg{col: ColumnMinute, seq: d.seq[ColumnMinute]}))
}

func TestDebouncerTickCarriesSequence(t *testing.T) {
	d := newDebouncer(0)
	msg := d.trigger(ColumnSecond, Gesture{Kind: GestureScroll})()
	settled, ok := msg.(scrollSettledMsg)
	require.True(t, ok)
	assert.Equal(t, ColumnSecond, settled.col)
	assert.True(t, d.accept(settled))
}

func TestAnimationFramesFeedDebounce(t *testing.T) {
	m := synced(t, "HH:mm", "14:05")
	before := m.debounce.seq[ColumnMinute]
	m.containers[ColumnMinute].scrollTo(40, ScrollSmooth)
	settle(t, m, ColumnMinute)
	assert.Greater(t, m.debounce.seq[ColumnMinute], before)
	assert.True(t, m.debounce.waiting[ColumnMinute])
}
