package timepanel

import "regexp"

// Column is one scrollable list in the panel.
type Column int

const (
	ColumnHour Column = iota
	ColumnMinute
	ColumnSecond
	ColumnMillisecond
	ColumnMeridiem
)

// timeColumns is indexed like Steps.
var timeColumns = []Column{ColumnHour, ColumnMinute, ColumnSecond, ColumnMillisecond}

func (c Column) String() string {
	switch c {
	case ColumnHour:
		return "hour"
	case ColumnMinute:
		return "minute"
	case ColumnSecond:
		return "second"
	case ColumnMillisecond:
		return "millisecond"
	case ColumnMeridiem:
		return "meridiem"
	default:
		return "unknown"
	}
}

// unitIndex returns the Steps index for a time-unit column, or -1 for meridiem.
func (c Column) unitIndex() int {
	for i, tc := range timeColumns {
		if tc == c {
			return i
		}
	}
	return -1
}

// IsTimeUnit reports whether the column holds a numeric unit.
func (c Column) IsTimeUnit() bool {
	return c.unitIndex() != -1
}

// formatTokenRe splits a format string into tokens. Bracketed text is a literal.
var formatTokenRe = regexp.MustCompile(`\[([^\]]+)]|Y{1,4}|M{1,4}|D{1,2}|d{1,4}|H{1,2}|h{1,2}|a|A|m{1,2}|s{1,2}|Z{1,2}|SSS`)

// ResolveColumns returns the columns to render for format, in token order.
// Repeated units keep their first position.
func ResolveColumns(format string) []Column {
	var cols []Column
	seen := make(map[Column]bool)
	for _, tok := range formatTokenRe.FindAllString(format, -1) {
		col, ok := columnForToken(tok)
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		cols = append(cols, col)
	}
	return cols
}

func columnForToken(tok string) (Column, bool) {
	switch tok {
	case "H", "HH", "h", "hh":
		return ColumnHour, true
	case "a", "A":
		return ColumnMeridiem, true
	case "m", "mm":
		return ColumnMinute, true
	case "s", "ss":
		return ColumnSecond, true
	case "SSS":
		return ColumnMillisecond, true
	default:
		return 0, false
	}
}

// isTwelveHour reports whether format renders hours on a 12-hour clock.
func isTwelveHour(format string) bool {
	for _, tok := range formatTokenRe.FindAllString(format, -1) {
		if tok == "h" || tok == "hh" {
			return true
		}
	}
	return false
}
