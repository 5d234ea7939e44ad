package main

import "github.com/charmbracelet/lipgloss"

const (
	titleFGColor = "#ff9f1c"
	valueFGColor = "#e0e0e0"
	dimFGColor   = "#a0a0a0"
	focusFGColor = "#ff9f1c"
)

// appMarginX and appMarginY must match appstyle; the panel origin depends on them.
const (
	appMarginX = 2
	appMarginY = 1
	// title line plus a blank line sit above the panel
	headerRows = 2
	footerRows = 2
	// widest the panel grows, in cells
	maxPanelWidth = 48
)

var (
	appstyle   = lipgloss.NewStyle().Margin(appMarginY, appMarginX)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleFGColor))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(valueFGColor))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(focusFGColor))

	focusMarker = "▲"
)
