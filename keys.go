package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	Accept      key.Binding
	NextColumn  key.Binding
	PrevColumn  key.Binding
	ItemUp      key.Binding
	ItemDown    key.Binding
	StepUp      key.Binding
	StepDown    key.Binding
	Now         key.Binding
	Reset       key.Binding
	CopyValue   key.Binding
	SaveToFile  key.Binding
	TogglePanel key.Binding
	JumpTo      key.Binding
	OpenHelp    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit without picking"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept value"),
	),
	NextColumn: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab/l", "next column"),
	),
	PrevColumn: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab/h", "previous column"),
	),
	ItemUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous item"),
	),
	ItemDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next item"),
	),
	StepUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "double column step"),
	),
	StepDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "halve column step"),
	),
	Now: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "jump to now"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset to initial value"),
	),
	CopyValue: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy value to clipboard"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "write value to file"),
	),
	TogglePanel: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "show/hide panel"),
	),
	JumpTo: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "type a time"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Accept,
		k.Quit,
		k.NextColumn,
		k.PrevColumn,
		k.ItemUp,
		k.ItemDown,
		k.StepUp,
		k.StepDown,
		k.Now,
		k.Reset,
		k.CopyValue,
		k.SaveToFile,
		k.TogglePanel,
		k.JumpTo,
		k.OpenHelp,
	}
}
