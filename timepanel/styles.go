package timepanel

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	itemFGColor     = "#c0c0c0"
	currentFGColor  = "#e0e0e0"
	panelBGColor    = "#1e1e1e"
	maskBGColor     = "#3a3a3a"
	disabledBlendBy = 0.6
)

// Styles controls how items are drawn.
type Styles struct {
	Item     lipgloss.Style
	Current  lipgloss.Style
	Disabled lipgloss.Style
	Mask     lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Item:     lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(itemFGColor)),
		Current:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(currentFGColor)),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color(blendHex(itemFGColor, panelBGColor, disabledBlendBy))),
		Mask:     lipgloss.NewStyle().Background(lipgloss.Color(maskBGColor)),
	}
}

// blendHex mixes two hex colours in Lab space. Unparseable input returns a.
func blendHex(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
