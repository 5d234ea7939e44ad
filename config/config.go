// Package config loads picker configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andareed/siftly-timepicker/timepanel"
	"gopkg.in/yaml.v3"
)

// Bound is an inclusive time-of-day limit.
type Bound struct {
	Hour, Minute, Second int
}

// Config defines the picker options.
type Config struct {
	Format           string
	Value            string
	Steps            timepanel.Steps
	Position         timepanel.Position
	HideDisabledTime bool
	Locale           timepanel.Locale
	ItemMargin       int
	TopInset         int
	VisibleItems     int
	DebugLog         string
	StateFile        string
	// Disabled lists raw values per position and column.
	Disabled map[timepanel.Position]timepanel.DisabledSet
	MinTime  *Bound
	MaxTime  *Bound
	Path     string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Format:       "HH:mm:ss",
		Steps:        timepanel.DefaultSteps,
		Position:     timepanel.PositionStart,
		Locale:       timepanel.DefaultLocale,
		VisibleItems: 7,
		Disabled:     map[timepanel.Position]timepanel.DisabledSet{},
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

// coerceIntList accepts a YAML list or a comma separated string.
func coerceIntList(value any) []int {
	var items []any
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		items = v
	case int:
		return []int{v}
	case string:
		for _, part := range strings.Split(v, ",") {
			items = append(items, part)
		}
	default:
		return nil
	}
	out := []int{}
	for _, item := range items {
		if n := coerceInt(item, -1); n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

func coerceString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// ParseSteps reads "1,5,1,1" style steps. Missing entries stay at 1.
func ParseSteps(value any) (timepanel.Steps, error) {
	steps := timepanel.DefaultSteps
	list := coerceIntList(value)
	if len(list) > len(steps) {
		return steps, fmt.Errorf("steps: want at most %d values, got %d", len(steps), len(list))
	}
	for i, n := range list {
		steps[i] = max(n, 1)
	}
	return steps, nil
}

// ParseBound reads "HH", "HH:mm" or "HH:mm:ss".
func ParseBound(s string) (*Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("bound %q: too many fields", s)
	}
	var vals [3]int
	limits := [3]int{23, 59, 59}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bound %q: %w", s, err)
		}
		if n < 0 || n > limits[i] {
			return nil, fmt.Errorf("bound %q: field %d out of range", s, i+1)
		}
		vals[i] = n
	}
	return &Bound{Hour: vals[0], Minute: vals[1], Second: vals[2]}, nil
}

var columnKeys = map[string]timepanel.Column{
	"hour":        timepanel.ColumnHour,
	"minute":      timepanel.ColumnMinute,
	"second":      timepanel.ColumnSecond,
	"millisecond": timepanel.ColumnMillisecond,
}

func parseDisabled(data any) map[timepanel.Position]timepanel.DisabledSet {
	out := map[timepanel.Position]timepanel.DisabledSet{}
	byPos, ok := data.(map[string]any)
	if !ok {
		return out
	}
	for posKey, cols := range byPos {
		pos := timepanel.Position(strings.ToLower(strings.TrimSpace(posKey)))
		if pos != timepanel.PositionStart && pos != timepanel.PositionEnd {
			continue
		}
		colMap, ok := cols.(map[string]any)
		if !ok {
			continue
		}
		set := timepanel.DisabledSet{}
		for colKey, vals := range colMap {
			col, ok := columnKeys[strings.ToLower(strings.TrimSpace(colKey))]
			if !ok {
				continue
			}
			if list := coerceIntList(vals); len(list) > 0 {
				set[col] = list
			}
		}
		out[pos] = set
	}
	return out
}

func parseConfig(data map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if format := coerceString(data["format"]); format != "" {
		cfg.Format = format
	}
	cfg.Value = coerceString(data["value"])
	if raw, ok := data["steps"]; ok {
		steps, err := ParseSteps(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Steps = steps
	}
	if pos := timepanel.Position(strings.ToLower(coerceString(data["position"]))); pos == timepanel.PositionEnd {
		cfg.Position = pos
	}
	cfg.HideDisabledTime = coerceBool(data["hide_disabled_time"], cfg.HideDisabledTime)

	if locale, ok := data["locale"].(map[string]any); ok {
		if am := coerceString(locale["ante_meridiem"]); am != "" {
			cfg.Locale.AnteMeridiem = am
		}
		if pm := coerceString(locale["post_meridiem"]); pm != "" {
			cfg.Locale.PostMeridiem = pm
		}
	}

	cfg.ItemMargin = max(coerceInt(data["item_margin"], cfg.ItemMargin), 0)
	cfg.TopInset = max(coerceInt(data["top_inset"], cfg.TopInset), 0)
	if n := coerceInt(data["visible_items"], cfg.VisibleItems); n > 0 {
		cfg.VisibleItems = n
	}
	cfg.DebugLog = coerceString(data["debug_log"])
	cfg.StateFile = coerceString(data["state_file"])
	cfg.Disabled = parseDisabled(data["disabled"])

	var err error
	if cfg.MinTime, err = ParseBound(coerceString(data["min_time"])); err != nil {
		return cfg, fmt.Errorf("min_time: %w", err)
	}
	if cfg.MaxTime, err = ParseBound(coerceString(data["max_time"])); err != nil {
		return cfg, fmt.Errorf("max_time: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration.
func Parse(raw []byte) (*Config, error) {
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if data == nil {
		return DefaultConfig(), nil
	}
	return parseConfig(data)
}

// DefaultPath is the config location under the user's config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sftime", "config.yaml")
}

// LoadConfig reads configPath. A missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}
	// #nosec G304 -- the path is chosen by the user
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		cfg.Path = configPath
		return cfg, nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	cfg.Path = configPath
	return cfg, err
}

// DisableFunc combines the static disabled lists with the min/max bounds.
// It returns nil when nothing is disabled.
func (c *Config) DisableFunc() timepanel.DisableFunc {
	if len(c.Disabled) == 0 && c.MinTime == nil && c.MaxTime == nil {
		return nil
	}
	return func(q timepanel.DisableQuery) timepanel.DisabledSet {
		out := timepanel.DisabledSet{}
		for col, vals := range c.Disabled[q.Partial] {
			out[col] = append(out[col], vals...)
		}
		if c.MinTime != nil {
			addBelow(out, q, *c.MinTime)
		}
		if c.MaxTime != nil {
			addAbove(out, q, *c.MaxTime)
		}
		return out
	}
}

func addBelow(out timepanel.DisabledSet, q timepanel.DisableQuery, b Bound) {
	for h := 0; h < b.Hour; h++ {
		out[timepanel.ColumnHour] = append(out[timepanel.ColumnHour], h)
	}
	if q.Hour != b.Hour {
		return
	}
	for m := 0; m < b.Minute; m++ {
		out[timepanel.ColumnMinute] = append(out[timepanel.ColumnMinute], m)
	}
	if q.Minute != b.Minute {
		return
	}
	for s := 0; s < b.Second; s++ {
		out[timepanel.ColumnSecond] = append(out[timepanel.ColumnSecond], s)
	}
}

func addAbove(out timepanel.DisabledSet, q timepanel.DisableQuery, b Bound) {
	for h := b.Hour + 1; h < 24; h++ {
		out[timepanel.ColumnHour] = append(out[timepanel.ColumnHour], h)
	}
	if q.Hour != b.Hour {
		return
	}
	for m := b.Minute + 1; m < 60; m++ {
		out[timepanel.ColumnMinute] = append(out[timepanel.ColumnMinute], m)
	}
	if q.Minute != b.Minute {
		return
	}
	for s := b.Second + 1; s < 60; s++ {
		out[timepanel.ColumnSecond] = append(out[timepanel.ColumnSecond], s)
	}
}

// PanelOptions maps the configuration onto panel options.
func (c *Config) PanelOptions() timepanel.Options {
	return timepanel.Options{
		Value:            c.Value,
		Format:           c.Format,
		Steps:            c.Steps,
		Position:         c.Position,
		HideDisabledTime: c.HideDisabledTime,
		DisableTime:      c.DisableFunc(),
		Locale:           c.Locale,
		Visible:          true,
		TopInset:         c.TopInset,
		VisibleItems:     c.VisibleItems,
	}
}
