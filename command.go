package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Command int

const (
	CmdNone Command = iota
	CmdJump
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	default:
		return CmdNone
	}
}

func commandBadge(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "[JUMP]"
	default:
		return "[NORMAL]"
	}
}

func commandPrompt(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "time: "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer.
func (m *model) activeCommandLine() string {
	if m.ci.cmd == CmdNone {
		return ""
	}
	return commandBadge(m.ci.cmd) + " " + commandPrompt(m.ci.cmd) + m.ci.buf
}

func (m *model) enterCommandMode(cmd Command) {
	m.ci = CommandInput{cmd: cmd}
}

func (m *model) exitCommandMode() {
	m.ci = CommandInput{}
}

func (m *model) runCommand() tea.Cmd {
	switch m.ci.cmd {
	case CmdJump:
		return m.jumpToValue(m.ci.buf)
	}
	return nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ci.buf); len(r) > 0 {
			m.ci.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ci.buf += " "
		return m, nil
	}

	// append printable rune
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		m.ci.buf += string(msg.Runes[0])
	}
	return m, nil
}
