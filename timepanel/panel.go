// Package timepanel renders the scrollable hour/minute/second/millisecond/
// meridiem columns of a time picker and keeps each column's scroll offset in
// step with the time value owned by the surrounding picker.
package timepanel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Locale holds the meridiem labels shown in the meridiem column.
type Locale struct {
	AnteMeridiem string
	PostMeridiem string
}

// DefaultLocale uses English labels.
var DefaultLocale = Locale{AnteMeridiem: "AM", PostMeridiem: "PM"}

const defaultVisibleItems = 7

// Options configures a panel. Value is owned by the caller; the panel only
// reports new values through ChangeMsg.
type Options struct {
	Value            string
	Format           string
	Steps            Steps
	Position         Position
	HideDisabledTime bool
	DisableTime      DisableFunc
	Locale           Locale
	Visible          bool

	// Measurer overrides geometry measurement, mostly for tests.
	Measurer Measurer
	// TopInset is added to the observed offset before it is resolved.
	TopInset     int
	VisibleItems int
	Clock        Clock
	Styles       *Styles
}

// GestureKind says what kind of input produced a change.
type GestureKind int

const (
	GestureScroll GestureKind = iota
	GestureClick
)

// Gesture is the input event behind a ChangeMsg.
type Gesture struct {
	Kind  GestureKind
	Mouse *tea.MouseMsg
}

// ChangeMsg carries a new formatted value to the owner of the panel.
type ChangeMsg struct {
	Value   string
	Column  Column
	Gesture Gesture
}

// ScrollTriggerResetMsg acknowledges a TriggerScroll request.
type ScrollTriggerResetMsg struct{}

// ColumnState tracks a column's scroll synchronisation.
type ColumnState int

const (
	StateUninitialized ColumnState = iota
	StateSynced
	StateDragging
)

type syncMsg struct {
	id   *Model
	auto bool
}

// Model is a Bubble Tea component rendering one column group.
type Model struct {
	opts        Options
	cols        []Column
	twelveHour  bool
	hasMeridiem bool
	current     Time

	containers map[Column]*scrollContainer
	states     map[Column]ColumnState
	debounce   *debouncer
	measurer   Measurer
	clock      Clock
	styles     Styles
	visible    bool

	pendingSync bool
	pendingAuto bool

	width, height    int
	originX, originY int
	layout           []columnMeta
}

// New builds a panel. Columns are resolved once from opts.Format and stay
// fixed for the lifetime of the model.
func New(opts Options) *Model {
	m := &Model{
		opts:       opts,
		containers: make(map[Column]*scrollContainer),
		states:     make(map[Column]ColumnState),
		debounce:   newDebouncer(ScrollDebounce),
		visible:    opts.Visible,
	}
	if m.opts.Locale == (Locale{}) {
		m.opts.Locale = DefaultLocale
	}
	if m.opts.VisibleItems <= 0 {
		m.opts.VisibleItems = defaultVisibleItems
	}
	m.clock = opts.Clock
	if m.clock == nil {
		m.clock = RealClock()
	}
	if opts.Styles != nil {
		m.styles = *opts.Styles
	} else {
		m.styles = DefaultStyles()
	}
	m.measurer = opts.Measurer
	if m.measurer == nil {
		m.measurer = styleMeasurer{panel: m}
	}

	m.cols = ResolveColumns(opts.Format)
	m.twelveHour = isTwelveHour(opts.Format)
	for _, col := range m.cols {
		if col == ColumnMeridiem {
			m.hasMeridiem = true
		}
		m.containers[col] = newScrollContainer(col)
	}
	m.current = DeriveTime(m.opts.Value, m.opts.Format, m.opts.Steps, m.clock)
	m.relayout()
	return m
}

// Init schedules the first synchronisation pass.
func (m *Model) Init() tea.Cmd {
	return m.scheduleSync(true)
}

// Update routes panel messages. Messages that are not for the panel are
// ignored.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncMsg:
		if msg.id != m {
			return m, nil
		}
		return m, m.runSync(msg.auto)
	case scrollSettledMsg:
		if !m.debounce.accept(msg) {
			return m, nil
		}
		return m, m.OnScroll(msg.col, msg.src)
	case scrollFrameMsg:
		c := m.containers[msg.col]
		if c == nil {
			return m, nil
		}
		moved, next := c.step(msg.gen)
		if !moved {
			return m, next
		}
		return m, tea.Batch(next, m.scrolled(msg.col, Gesture{Kind: GestureScroll}))
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

// Columns returns the rendered columns in order.
func (m *Model) Columns() []Column {
	return append([]Column(nil), m.cols...)
}

// Current returns the time the panel currently reflects.
func (m *Model) Current() Time { return m.current }

// Value returns the externally owned value last handed to the panel.
func (m *Model) Value() string { return m.opts.Value }

// Format returns the display format.
func (m *Model) Format() string { return m.opts.Format }

// Steps returns the configured steps.
func (m *Model) Steps() Steps { return m.opts.Steps }

// Offset returns the live scroll offset of col.
func (m *Model) Offset(col Column) int {
	if c := m.containers[col]; c != nil {
		return c.offset
	}
	return 0
}

// State returns the synchronisation state of col.
func (m *Model) State(col Column) ColumnState {
	return m.states[col]
}

// Visible reports whether scroll gestures are being processed.
func (m *Model) Visible() bool { return m.visible }

// Show opens the panel for gestures.
func (m *Model) Show() { m.visible = true }

// Hide stops gesture processing.
func (m *Model) Hide() { m.visible = false }

// SetSize gives the panel its rendered area. The first size also completes
// any synchronisation pass that was waiting on layout.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width, m.height = width, height
	m.relayout()
	if m.pendingSync {
		m.pendingSync = false
		return m.scheduleSync(m.pendingAuto)
	}
	return nil
}

// SetOrigin records where the panel's top-left corner is drawn, for mouse
// hit testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetValue hands the panel a new externally owned value. A change to a
// present value re-synchronises every column after the next render.
func (m *Model) SetValue(value string) tea.Cmd {
	if value == m.opts.Value {
		return nil
	}
	m.opts.Value = value
	m.current = DeriveTime(value, m.opts.Format, m.opts.Steps, m.clock)
	if value == "" || !m.current.Valid() {
		return nil
	}
	return m.scheduleSync(true)
}

// SetFormat changes the display format. The column set is not recomputed.
func (m *Model) SetFormat(format string) tea.Cmd {
	if format == m.opts.Format {
		return nil
	}
	m.opts.Format = format
	m.twelveHour = isTwelveHour(format)
	m.current = DeriveTime(m.opts.Value, format, m.opts.Steps, m.clock)
	if m.opts.Value == "" || !m.current.Valid() {
		return nil
	}
	return m.scheduleSync(true)
}

// SetSteps replaces the step sizes. Call TriggerScroll afterwards to move
// the columns onto the new grid.
func (m *Model) SetSteps(steps Steps) {
	m.opts.Steps = steps
	m.current = DeriveTime(m.opts.Value, m.opts.Format, steps, m.clock)
	m.relayout()
}

// SetDisableTime replaces the disable predicate.
func (m *Model) SetDisableTime(fn DisableFunc) {
	m.opts.DisableTime = fn
	m.relayout()
}

// SetHideDisabledTime toggles whether disabled values are listed.
func (m *Model) SetHideDisabledTime(hide bool) {
	m.opts.HideDisabledTime = hide
	m.relayout()
}

// SetLocale replaces the meridiem labels.
func (m *Model) SetLocale(l Locale) {
	if l == (Locale{}) {
		l = DefaultLocale
	}
	m.opts.Locale = l
	m.relayout()
}

func (m *Model) emit(value string, col Column, g Gesture) tea.Cmd {
	return func() tea.Msg {
		return ChangeMsg{Value: value, Column: col, Gesture: g}
	}
}

// now is used as the base for parsing partial dates.
func (m *Model) now() time.Time {
	return m.clock.Now()
}
