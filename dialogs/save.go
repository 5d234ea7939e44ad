package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/siftly-timepicker/logging"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

var (
	confirmKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	cancelKey  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
)

// --- Save dialog (modal) ----------------------------------------------------

// Save asks for the file the picked time is written to.
type Save struct {
	input   textinput.Model
	visible bool
	// relative names without a directory land here
	lastDir string
}

func (d Save) Init() tea.Cmd { return d.input.Focus() }

func NewSaveDialog(defaultName, lastDir string) *Save {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Save time to: "
	ti.CharLimit = 256
	ti.Width = 30
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Save{input: ti, visible: true, lastDir: lastDir}
}

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(m, confirmKey):
			val := d.input.Value()
			if val == "" {
				// fall back to placeholder if user left it blank
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			path := val
			if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
				path = filepath.Join(d.lastDir, filepath.Base(path))
			}
			logging.Debugf("SaveDialog: confirmed %q", path)
			return d, func() tea.Msg { return SaveConfirmedMsg{Path: path} }
		case key.Matches(m, cancelKey):
			logging.Debugf("SaveDialog: canceled")
			return d, func() tea.Msg { return SaveCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Save) View() string {
	if !d.visible {
		return ""
	}
	hint := hintStyle.Render(fmt.Sprintf("%s to %s • %s to %s",
		confirmKey.Help().Key, confirmKey.Help().Desc,
		cancelKey.Help().Key, cancelKey.Help().Desc))
	return box().Render(fmt.Sprintf("%s\n\n%s", d.input.View(), hint))
}

func (d *Save) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Save) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Save) Focus() tea.Cmd { return d.input.Focus() }
func (d *Save) Blur()          { d.input.Blur() }
func (d Save) IsVisible() bool { return d.visible }
