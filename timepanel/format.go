package timepanel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

type formatToken struct {
	text    string
	literal bool
}

func tokenize(format string) []formatToken {
	var toks []formatToken
	last := 0
	for _, loc := range formatTokenRe.FindAllStringSubmatchIndex(format, -1) {
		if loc[0] > last {
			toks = append(toks, formatToken{text: format[last:loc[0]], literal: true})
		}
		if loc[2] >= 0 {
			toks = append(toks, formatToken{text: format[loc[2]:loc[3]], literal: true})
		} else {
			toks = append(toks, formatToken{text: format[loc[0]:loc[1]]})
		}
		last = loc[1]
	}
	if last < len(format) {
		toks = append(toks, formatToken{text: format[last:], literal: true})
	}
	return toks
}

func formatTime(t time.Time, format string) string {
	var b strings.Builder
	for _, tok := range tokenize(format) {
		if tok.literal {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(formatField(t, tok.text))
	}
	return b.String()
}

func formatField(t time.Time, tok string) string {
	h12 := t.Hour() % 12
	if h12 == 0 {
		h12 = 12
	}
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "MMM":
		return t.Month().String()[:3]
	case "MMMM":
		return t.Month().String()
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return t.Weekday().String()[:2]
	case "ddd":
		return t.Weekday().String()[:3]
	case "dddd":
		return t.Weekday().String()
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "h":
		return strconv.Itoa(h12)
	case "hh":
		return fmt.Sprintf("%02d", h12)
	case "a":
		if t.Hour() >= 12 {
			return PM
		}
		return AM
	case "A":
		if t.Hour() >= 12 {
			return strings.ToUpper(PM)
		}
		return strings.ToUpper(AM)
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	default:
		// Y, YYY and similar are not format tokens; print them as written.
		return tok
	}
}

type compiledLayout struct {
	re     *regexp.Regexp
	fields []string
}

var layoutCache sync.Map // format -> *compiledLayout

func tokenPattern(tok string) string {
	switch tok {
	case "YYYY":
		return `(\d{4})`
	case "YY", "MM", "DD":
		return `(\d\d)`
	case "M", "D", "H", "HH", "h", "hh", "m", "mm", "s", "ss":
		return `(\d\d?)`
	case "SSS":
		return `(\d{3})`
	case "MMM", "MMMM":
		return `([A-Za-z]+)`
	case "d", "dd", "ddd", "dddd":
		return `(\w+)`
	case "a", "A":
		return `([AaPp][Mm])`
	case "Z", "ZZ":
		return `([+-]\d\d:?\d\d|Z)`
	default:
		return `(` + regexp.QuoteMeta(tok) + `)`
	}
}

func compileLayout(format string) *compiledLayout {
	if v, ok := layoutCache.Load(format); ok {
		return v.(*compiledLayout)
	}
	var b strings.Builder
	var fields []string
	b.WriteString("^")
	for _, tok := range tokenize(format) {
		if tok.literal {
			b.WriteString(regexp.QuoteMeta(tok.text))
			continue
		}
		b.WriteString(tokenPattern(tok.text))
		fields = append(fields, tok.text)
	}
	cl := &compiledLayout{re: regexp.MustCompile(b.String()), fields: fields}
	layoutCache.Store(format, cl)
	return cl
}

// parseTime reads value against format. Missing date parts come from base,
// as do the location and any unset time parts (which default to zero).
func parseTime(value, format string, base time.Time) (time.Time, bool) {
	cl := compileLayout(format)
	m := cl.re.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}

	year, month, day := 0, 0, 0
	hour, minute, second, milli := 0, 0, 0, 0
	afternoon := -1
	loc := base.Location()

	for i, field := range cl.fields {
		raw := m[i+1]
		switch field {
		case "YYYY":
			year, _ = strconv.Atoi(raw)
		case "YY":
			yy, _ := strconv.Atoi(raw)
			if yy > 68 {
				year = 1900 + yy
			} else {
				year = 2000 + yy
			}
		case "M", "MM":
			month, _ = strconv.Atoi(raw)
		case "MMM", "MMMM":
			mo, ok := monthByName(raw)
			if !ok {
				return time.Time{}, false
			}
			month = mo
		case "D", "DD":
			day, _ = strconv.Atoi(raw)
		case "H", "HH", "h", "hh":
			hour, _ = strconv.Atoi(raw)
		case "m", "mm":
			minute, _ = strconv.Atoi(raw)
		case "s", "ss":
			second, _ = strconv.Atoi(raw)
		case "SSS":
			milli, _ = strconv.Atoi(raw)
		case "a", "A":
			if strings.EqualFold(raw, PM) {
				afternoon = 1
			} else {
				afternoon = 0
			}
		case "Z", "ZZ":
			l, ok := parseZone(raw)
			if !ok {
				return time.Time{}, false
			}
			loc = l
		}
	}

	switch afternoon {
	case 1:
		if hour < 12 {
			hour += 12
		}
	case 0:
		if hour == 12 {
			hour = 0
		}
	}

	if year == 0 && month == 0 {
		if day == 0 {
			day = base.Day()
		}
		month = int(base.Month())
	}
	if year == 0 {
		year = base.Year()
	}
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, milli*int(time.Millisecond), loc), true
}

func monthByName(name string) (int, bool) {
	for mo := time.January; mo <= time.December; mo++ {
		full := mo.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return int(mo), true
		}
	}
	return 0, false
}

func parseZone(raw string) (*time.Location, bool) {
	if raw == "Z" {
		return time.UTC, true
	}
	sign := 1
	if raw[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(raw[1:], ":", "")
	if len(digits) != 4 {
		return nil, false
	}
	hh, err := strconv.Atoi(digits[:2])
	if err != nil {
		return nil, false
	}
	mm, err := strconv.Atoi(digits[2:])
	if err != nil {
		return nil, false
	}
	return time.FixedZone("", sign*(hh*3600+mm*60)), true
}

// strictValid reports whether value parses against format and formats back
// to exactly the same text.
func strictValid(value, format string, base time.Time) bool {
	t, ok := parseTime(value, format, base)
	if !ok {
		return false
	}
	return formatTime(t, format) == value
}

// ParseValue parses value against format and accepts it only when it
// formats back to the same text.
func ParseValue(value, format string, base time.Time) (Time, bool) {
	t, ok := parseTime(value, format, base)
	if !ok || formatTime(t, format) != value {
		return Time{}, false
	}
	return NewTime(t), true
}
