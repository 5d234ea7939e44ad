package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode      string
	ModeInput string
	Value     string
	Format    string

	Focus    string
	Steps    string
	Position string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	ValueFG    lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		ValueFG:    lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "PICK"
	}
	if st.Legend == "" {
		st.Legend = "(? help · enter accept · q quit)"
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" %s · steps %s · %s", st.Focus, st.Steps, st.Position)
	rightPlain = truncatePlain(rightPlain, width*2/3)
	rightW := textWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeText := st.Mode
	modeColW := min(textWidth(modeText)+2, leftW)
	valueColW := max(0, leftW-modeColW-gapW)

	modeSeg := renderModeSegment(modeColW, st, styles)
	valueSeg := renderValueSegment(valueColW, st, styles)

	left := modeSeg
	if valueColW > 0 {
		left += strings.Repeat(" ", gapW) + valueSeg
	}
	leftWActual := modeColW
	if valueColW > 0 {
		leftWActual += gapW + valueColW
	}
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	linePlain := left + applyFG(rightPlain, styles.DimFG, styles.TextFG)
	return applyBar(linePlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	// the notice wins over the legend
	msgPlain := truncatePlain(st.StatusMessage, width)
	legendW := width
	if msgPlain != "" {
		legendW = max(0, width-textWidth(msgPlain)-1)
	}
	legendPlain := truncatePlain(st.Legend, legendW)

	leftW := max(0, width-textWidth(legendPlain))
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(st.Mode, max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-textWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderValueSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	value := strings.TrimSpace(st.Value)
	if value == "" {
		value = "(no value)"
	}
	valuePlain := truncatePlain("▸ "+value, colW)
	remaining := colW - textWidth(valuePlain)

	formatPlain := ""
	if remaining > 0 && st.Format != "" {
		formatPlain = truncatePlain(" ["+st.Format+"]", remaining)
		remaining -= textWidth(formatPlain)
	}
	inputPlain := ""
	if remaining > 0 {
		if input := strings.TrimSpace(st.ModeInput); input != "" {
			inputPlain = truncatePlain(" ▸ "+input, remaining)
			remaining -= textWidth(inputPlain)
		}
	}
	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(valuePlain, styles.ValueFG, styles.TextFG) + applyFG(formatPlain, styles.DimFG, styles.TextFG) + inputPlain + pad
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if !strings.HasPrefix(s, "#") {
		return ""
	}
	return termenv.CSI + termenv.RGBColor(s).Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := textWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.String(s, uint(w))
}

func textWidth(s string) int {
	return ansi.StringWidth(s)
}
