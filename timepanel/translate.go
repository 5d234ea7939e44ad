package timepanel

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// DistanceFor returns the scroll offset at which item sits at the top of
// col. Time-unit items are decimal numbers, padded or not; hours above 11
// fold onto the 12-hour list when the format uses one. Meridiem items are
// matched without regard to case. Unknown items and an unmeasured panel
// both yield 0.
func (m *Model) DistanceFor(col Column, item string) int {
	g, ok := m.geometry()
	if !ok {
		return 0
	}
	idx := m.indexOf(col, item)
	if idx < 0 {
		idx = 0
	}
	return idx * g.Total()
}

func (m *Model) indexOf(col Column, item string) int {
	list := m.ColumnList(col)
	if !col.IsTimeUnit() {
		return slices.IndexFunc(list, func(v string) bool {
			return strings.EqualFold(v, strings.TrimSpace(item))
		})
	}
	n, err := strconv.Atoi(strings.TrimSpace(item))
	if err != nil {
		return -1
	}
	if col == ColumnHour && m.twelveHour {
		n %= 12
	}
	return slices.Index(list, pad2(n))
}

// ValueFor resolves an observed scroll offset of col to a value. Time units
// come back as decimal strings snapped to the step grid, with 12 added to the
// hour while the current time is in the afternoon and a meridiem column is
// shown. The meridiem column yields "am" or "pm".
func (m *Model) ValueFor(col Column, offset int) string {
	slot := 1
	if g, ok := m.geometry(); ok {
		f := math.Abs(math.Round(float64(offset)/float64(g.Total()) + 0.5))
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			slot = int(f)
		}
	}
	if slot < 1 {
		slot = 1
	}

	if !col.IsTimeUnit() {
		return strings.ToLower(MeridiemList[min(slot-1, len(MeridiemList)-1)])
	}

	bound := upperBound(col, m.twelveHour)
	step := m.opts.Steps.Of(col)
	available := steppedRange(bound, step)
	list := m.ColumnList(col)

	val := available[len(available)-1]
	i := min(slot-1, bound+1, len(available)-1)
	if i < len(list) {
		if n, err := strconv.Atoi(list[i]); err == nil {
			if snapped, ok := closestLookup(available, n, step); ok {
				val = snapped
			}
		}
	}
	if col == ColumnHour && m.hasMeridiem && m.current.Hour() >= 12 {
		val += 12
	}
	return strconv.Itoa(val)
}
