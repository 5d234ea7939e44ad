package timepanel

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Position says which endpoint of a range a panel edits.
type Position string

const (
	PositionStart Position = "start"
	PositionEnd   Position = "end"
)

// DisableQuery is the time tuple handed to a DisableFunc.
type DisableQuery struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Partial     Position
}

// DisabledSet lists, per column, the raw values that may not be selected.
type DisabledSet map[Column][]int

// Contains reports whether v is disabled for col. A nil set disables nothing.
func (d DisabledSet) Contains(col Column, v int) bool {
	if d == nil {
		return false
	}
	return slices.Contains(d[col], v)
}

// DisableFunc decides which values are disabled for a candidate time.
type DisableFunc func(q DisableQuery) DisabledSet

// upperBound is the largest value a time-unit column can show.
func upperBound(col Column, twelveHour bool) int {
	switch col {
	case ColumnHour:
		if twelveHour {
			return 11
		}
		return 23
	case ColumnMillisecond:
		return 999
	default:
		return 59
	}
}

// steppedRange returns 0, step, 2*step, ... up to and including max.
func steppedRange(max, step int) []int {
	if step < 1 {
		step = 1
	}
	out := make([]int, 0, max/step+1)
	for v := 0; v <= max; v += step {
		out = append(out, v)
	}
	return out
}

func pad2(v int) string {
	return fmt.Sprintf("%02d", v)
}

// closestLookup snaps v to the nearest entry of available. With a step of 1
// every value is already valid and v is returned as is.
func closestLookup(available []int, v, step int) (int, bool) {
	if step <= 1 {
		return v, true
	}
	if len(available) == 0 {
		return 0, false
	}
	best := available[0]
	bestDiff := abs(v - best)
	for _, a := range available[1:] {
		if d := abs(v - a); d < bestDiff {
			best, bestDiff = a, d
		}
	}
	return best, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (m *Model) partial() Position {
	if m.opts.Position == "" {
		return PositionStart
	}
	return m.opts.Position
}

// ColumnList returns the selectable values of col, zero padded to two
// digits. Disabled values are dropped when HideDisabledTime is set.
func (m *Model) ColumnList(col Column) []string {
	if !col.IsTimeUnit() {
		return MeridiemList
	}
	candidates := steppedRange(upperBound(col, m.twelveHour), m.opts.Steps.Of(col))
	list := make([]string, 0, len(candidates))
	filter := m.opts.HideDisabledTime && m.opts.DisableTime != nil
	for _, v := range candidates {
		if filter && !m.TimeItemCanUsed(col, v) {
			continue
		}
		list = append(list, pad2(v))
	}
	return list
}
