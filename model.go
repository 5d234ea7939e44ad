package main

import (
	"path/filepath"

	"github.com/andareed/siftly-timepicker/clipboard"
	"github.com/andareed/siftly-timepicker/config"
	"github.com/andareed/siftly-timepicker/dialogs"
	"github.com/andareed/siftly-timepicker/logging"
	"github.com/andareed/siftly-timepicker/timepanel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	cfg   *config.Config
	panel *timepanel.Model
	keys  Keymap

	// value is owned here; the panel only proposes changes
	value   string
	initial string
	focus   int // index into panel.Columns()

	// set while a forced re-sync is waiting for its acknowledgement
	triggerScroll bool
	accepted      bool

	terminalWidth  int
	terminalHeight int
	ready          bool

	activeDialog dialogs.Dialog
	lastSaveDir  string
	ci           CommandInput

	noticeMsg  string
	noticeType string
	noticeSeq  int

	statePath string
	clock     timepanel.Clock
	copyFn    func(string) error
}

type modelOption func(*model)

func withClock(c timepanel.Clock) modelOption {
	return func(m *model) { m.clock = c }
}

func withClipboard(fn func(string) error) modelOption {
	return func(m *model) { m.copyFn = fn }
}

func withStatePath(path string) modelOption {
	return func(m *model) { m.statePath = path }
}

func newModel(cfg *config.Config, opts ...modelOption) *model {
	m := &model{
		cfg:     cfg,
		keys:    Keys,
		value:   cfg.Value,
		initial: cfg.Value,
		clock:   timepanel.RealClock(),
		copyFn:  clipboard.Copy,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.panel = timepanel.New(m.panelOptions())
	return m
}

func (m *model) panelOptions() timepanel.Options {
	opts := m.cfg.PanelOptions()
	opts.Value = m.value
	opts.Clock = m.clock
	styles := timepanel.DefaultStyles()
	if m.cfg.ItemMargin > 0 {
		styles.Item = styles.Item.MarginTop(m.cfg.ItemMargin)
	}
	opts.Styles = &styles
	return opts
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sftime: initialised format=%q value=%q", m.cfg.Format, m.value)
	return m.panel.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		return m, m.layoutPanel()
	case tea.KeyMsg:
		if m.dialogOpen() {
			return m.updateDialog(msg)
		}
		if m.ci.cmd != CmdNone {
			return m.handleCommandKey(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.dialogOpen() {
			return m, nil
		}
	case timepanel.ChangeMsg:
		return m, m.applyChange(msg)
	case timepanel.ScrollTriggerResetMsg:
		m.triggerScroll = false
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	case dialogs.SaveConfirmedMsg:
		return m, m.saveValue(msg.Path)
	case dialogs.SaveCanceledMsg:
		m.closeDialog()
		return m, nil
	case configReloadedMsg:
		return m, m.applyConfig(msg)
	}

	if m.dialogOpen() {
		// cursor blink and friends
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		var pcmd tea.Cmd
		m.panel, pcmd = m.panel.Update(msg)
		return m, tea.Batch(cmd, pcmd)
	}
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

// layoutPanel sizes the panel to the rows left between header and footer.
func (m *model) layoutPanel() tea.Cmd {
	width := min(maxPanelWidth, max(0, m.terminalWidth-2*appMarginX))
	// one row under the panel holds the focus marker
	free := m.terminalHeight - 2*appMarginY - headerRows - footerRows - 1
	rows := min(m.cfg.VisibleItems*(1+m.cfg.ItemMargin), free)
	rows = max(rows, 1)
	m.panel.SetOrigin(appMarginX, appMarginY+headerRows)
	logging.Debugf("layoutPanel: term=%dx%d panel=%dx%d", m.terminalWidth, m.terminalHeight, width, rows)
	return m.panel.SetSize(width, rows)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logging.Infof("sftime: quit without accepting")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Accept):
		return m, m.accept()
	case key.Matches(msg, m.keys.NextColumn):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevColumn):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.ItemUp):
		return m, m.scrollFocused(-1)
	case key.Matches(msg, m.keys.ItemDown):
		return m, m.scrollFocused(1)
	case key.Matches(msg, m.keys.StepUp):
		return m, m.adjustFocusedStep(true)
	case key.Matches(msg, m.keys.StepDown):
		return m, m.adjustFocusedStep(false)
	case key.Matches(msg, m.keys.Now):
		return m, m.jumpToNow()
	case key.Matches(msg, m.keys.Reset):
		return m, m.reset()
	case key.Matches(msg, m.keys.CopyValue):
		return m, m.copyValue()
	case key.Matches(msg, m.keys.SaveToFile):
		return m, m.openDialog(dialogs.NewSaveDialog("time.txt", m.lastSaveDir))
	case key.Matches(msg, m.keys.TogglePanel):
		m.togglePanel()
	case key.Matches(msg, m.keys.JumpTo):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, m.keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(m.keys.Legend()))
	}
	return m, nil
}

// applyChange takes a value proposed by the panel.
func (m *model) applyChange(msg timepanel.ChangeMsg) tea.Cmd {
	logging.Debugf("applyChange: %q -> %q (%s)", m.value, msg.Value, msg.Column)
	for i, col := range m.panel.Columns() {
		if col == msg.Column {
			m.focus = i
			break
		}
	}
	return m.setValue(msg.Value)
}

func (m *model) setValue(value string) tea.Cmd {
	m.value = value
	return m.panel.SetValue(value)
}

func (m *model) focusedColumn() (timepanel.Column, bool) {
	cols := m.panel.Columns()
	if len(cols) == 0 {
		return 0, false
	}
	m.focus = clamp(m.focus, 0, len(cols)-1)
	return cols[m.focus], true
}

func (m *model) moveFocus(delta int) {
	cols := m.panel.Columns()
	if len(cols) == 0 {
		return
	}
	m.focus = ((m.focus+delta)%len(cols) + len(cols)) % len(cols)
}

// scrollFocused moves the focused column by whole items. The panel resolves
// the new value once the scroll settles, as it does for the wheel.
func (m *model) scrollFocused(items int) tea.Cmd {
	col, ok := m.focusedColumn()
	if !ok {
		return nil
	}
	if !m.panel.Visible() {
		return m.startNotice("panel hidden (space to show)", "warn", noticeDuration)
	}
	return m.panel.ScrollBy(col, items)
}

func (m *model) reset() tea.Cmd {
	cmd := m.setValue(m.initial)
	if cmd == nil {
		m.triggerScroll = true
		cmd = m.panel.TriggerScroll()
	}
	return tea.Batch(cmd, m.startNotice("reset", "info", noticeDuration))
}

func (m *model) copyValue() tea.Cmd {
	if m.value == "" {
		return m.startNotice("nothing to copy", "warn", noticeDuration)
	}
	if err := m.copyFn(m.value); err != nil {
		logging.Errorf("copyValue: %v", err)
		return m.startNotice("copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("copied "+m.value, "success", noticeDuration)
}

func (m *model) togglePanel() {
	if m.panel.Visible() {
		m.panel.Hide()
		return
	}
	m.panel.Show()
}

// accept ends the program with the current value.
func (m *model) accept() tea.Cmd {
	if m.value == "" {
		return m.startNotice("no value picked yet", "warn", noticeDuration)
	}
	m.accepted = true
	if m.statePath != "" {
		if err := SaveSession(m.statePath, m.panel.Format(), m.value, m.cfg.Position, m.clock.Now()); err != nil {
			logging.Errorf("accept: save session: %v", err)
		}
	}
	logging.Infof("sftime: accepted %q", m.value)
	return tea.Quit
}

func (m *model) saveValue(path string) tea.Cmd {
	m.closeDialog()
	if err := writeValueFile(path, m.value); err != nil {
		logging.Errorf("saveValue: %v", err)
		return m.startNotice("save failed: "+err.Error(), "error", noticeDuration)
	}
	m.lastSaveDir = filepath.Dir(path)
	return m.startNotice("saved to "+path, "success", noticeDuration)
}

// applyConfig re-applies the reloadable settings. Format and value stay as
// they are; they may have come from flags.
func (m *model) applyConfig(msg configReloadedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Warnf("applyConfig: %v", msg.err)
		return m.startNotice("config reload failed: "+msg.err.Error(), "error", noticeDuration)
	}
	next := msg.cfg
	m.cfg.Steps = next.Steps
	m.cfg.HideDisabledTime = next.HideDisabledTime
	m.cfg.Locale = next.Locale
	m.cfg.Disabled = next.Disabled
	m.cfg.MinTime = next.MinTime
	m.cfg.MaxTime = next.MaxTime

	m.panel.SetSteps(m.cfg.Steps)
	m.panel.SetHideDisabledTime(m.cfg.HideDisabledTime)
	m.panel.SetDisableTime(m.cfg.DisableFunc())
	m.panel.SetLocale(m.cfg.Locale)
	m.triggerScroll = true
	return tea.Batch(m.panel.TriggerScroll(), m.startNotice("config reloaded", "info", noticeDuration))
}

// --- Dialogs ----------------------------------------------------------------

func (m *model) dialogOpen() bool {
	return m.activeDialog != nil && m.activeDialog.IsVisible()
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	return d.Focus()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.activeDialog, cmd = m.activeDialog.Update(msg)
	if !m.activeDialog.IsVisible() {
		m.activeDialog = nil
	}
	return m, cmd
}
