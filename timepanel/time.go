package timepanel

import (
	"strings"
	"time"
)

// Meridiem designators as stored and compared internally.
const (
	AM = "am"
	PM = "pm"
)

// MeridiemList is the fixed content of the meridiem column.
var MeridiemList = []string{"AM", "PM"}

// Steps holds step sizes for hour, minute, second and millisecond.
type Steps [4]int

// Of returns the step for a time-unit column, never less than 1.
func (s Steps) Of(col Column) int {
	idx := col.unitIndex()
	if idx < 0 || s[idx] < 1 {
		return 1
	}
	return s[idx]
}

// IsSet reports whether any unit uses a step greater than 1.
func (s Steps) IsSet() bool {
	for _, v := range s {
		if v > 1 {
			return true
		}
	}
	return false
}

// DefaultSteps selects every value in every column.
var DefaultSteps = Steps{1, 1, 1, 1}

// Clock supplies the current time. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// FixedClock always returns the same instant.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }

// Time is an immutable time-of-day snapshot. The zero value is invalid.
type Time struct {
	t     time.Time
	valid bool
}

// NewTime wraps t as a valid Time.
func NewTime(t time.Time) Time {
	return Time{t: t, valid: true}
}

// DeriveTime returns the canonical current time for the panel. A non-empty
// value is parsed against format; otherwise it is now, or today at midnight
// when any step is greater than 1.
func DeriveTime(value, format string, steps Steps, clock Clock) Time {
	if clock == nil {
		clock = RealClock()
	}
	now := clock.Now()
	if value != "" {
		t, ok := parseTime(value, format, now)
		if !ok {
			return Time{}
		}
		return NewTime(t)
	}
	if steps.IsSet() {
		y, mo, d := now.Date()
		return NewTime(time.Date(y, mo, d, 0, 0, 0, 0, now.Location()))
	}
	return NewTime(now)
}

func (t Time) Valid() bool           { return t.valid }
func (t Time) Hour() int             { return t.t.Hour() }
func (t Time) Minute() int           { return t.t.Minute() }
func (t Time) Second() int           { return t.t.Second() }
func (t Time) Millisecond() int      { return t.t.Nanosecond() / int(time.Millisecond) }
func (t Time) GoTime() time.Time     { return t.t }
func (t Time) Equal(other Time) bool { return t.valid == other.valid && t.t.Equal(other.t) }

// Meridiem returns "am" or "pm".
func (t Time) Meridiem() string {
	if t.Hour() >= 12 {
		return PM
	}
	return AM
}

// Get returns the unit for col. Meridiem columns return 0.
func (t Time) Get(col Column) int {
	switch col {
	case ColumnHour:
		return t.Hour()
	case ColumnMinute:
		return t.Minute()
	case ColumnSecond:
		return t.Second()
	case ColumnMillisecond:
		return t.Millisecond()
	default:
		return 0
	}
}

// Set returns a copy with col replaced by v. Out-of-range values roll over
// into the neighbouring unit the way time.Date normalises them.
func (t Time) Set(col Column, v int) Time {
	y, mo, d := t.t.Date()
	h, mi, s, ms := t.Hour(), t.Minute(), t.Second(), t.Millisecond()
	switch col {
	case ColumnHour:
		h = v
	case ColumnMinute:
		mi = v
	case ColumnSecond:
		s = v
	case ColumnMillisecond:
		ms = v
	default:
		return t
	}
	return Time{
		t:     time.Date(y, mo, d, h, mi, s, ms*int(time.Millisecond), t.t.Location()),
		valid: t.valid,
	}
}

// Format renders t with a token format such as "hh:mm A".
func (t Time) Format(format string) string {
	return formatTime(t.t, format)
}

// Query builds the disable-predicate argument for t.
func (t Time) Query(partial Position) DisableQuery {
	return DisableQuery{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Millisecond(),
		Partial:     partial,
	}
}

func normalizeMeridiem(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
