package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-timepicker/dialogs"
	"github.com/andareed/siftly-timepicker/logging"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) headerView() string {
	value := m.value
	if value == "" {
		value = "--"
	}
	return titleStyle.Render("sftime") + "  " + valueStyle.Render(value) + "  " + dimStyle.Render(m.panel.Format())
}

func (m *model) panelView() string {
	if !m.panel.Visible() {
		return dimStyle.Render("(panel hidden · space to show)")
	}
	return m.panel.View()
}

// focusView draws a marker under the focused column.
func (m *model) focusView() string {
	col, ok := m.focusedColumn()
	if !ok || !m.panel.Visible() {
		return ""
	}
	x, w, ok := m.panel.ColumnSpan(col)
	if !ok {
		return ""
	}
	return strings.Repeat(" ", x+max(0, w-1)/2) + focusStyle.Render(focusMarker)
}

func (m *model) modeLabel() string {
	if m.ci.cmd == CmdJump {
		return "JUMP"
	}
	switch m.activeDialog.(type) {
	case *dialogs.Save:
		return "SAVE"
	case *dialogs.Help:
		return "HELP"
	}
	if !m.panel.Visible() {
		return "HIDDEN"
	}
	return "PICK"
}

// footerView renders the 2-line footer. width is the content width.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:      m.modeLabel(),
		ModeInput: m.activeCommandLine(),
		Value:     m.value,
		Format:    m.panel.Format(),
		Steps:     stepsLabel(m.panel.Steps()),
		Position:  string(m.cfg.Position),
		Legend:    "(? help · tab column · j/k scroll · : type · enter accept · q quit)",
	}
	if col, ok := m.focusedColumn(); ok {
		st.Focus = col.String()
	}
	if st.Position == "" {
		st.Position = "start"
	}
	if m.noticeMsg != "" {
		st.StatusMessage = noticeText(m.noticeMsg, m.noticeType)
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d focus=%d trigger=%v", m.terminalWidth, m.terminalHeight, m.focus, m.triggerScroll)
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	contentW := max(0, m.terminalWidth-2*appMarginX)
	bodyH := max(0, m.terminalHeight-2*appMarginY-footerRows)

	var body string
	if m.dialogOpen() {
		body = dialogs.Center(m.activeDialog.View(), contentW, bodyH)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.headerView(), "", m.panelView(), m.focusView())
		body = lipgloss.NewStyle().Height(bodyH).Render(body)
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(contentW)))
}
