package dialogs

import "github.com/charmbracelet/lipgloss"

// Center places a rendered dialog in the middle of a width x height area.
func Center(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}

func box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(44)
}

var hintStyle = lipgloss.NewStyle().Faint(true)
