package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ansiColors maps screen colors to terminal palette indexes.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// palette holds one lipgloss style per screen color.
// Bright colors are the head colors of the default theme and render bold so
// each snake's head stands out from its body; gray marks dead snakes and the
// board frame and renders faint.
type palette map[core.Color]lipgloss.Style

func newPalette() palette {
	p := palette{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiColors {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		switch c {
		case core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
			core.ColorBrightBlue, core.ColorBrightMagenta, core.ColorBrightCyan,
			core.ColorBrightWhite:
			style = style.Bold(true)
		case core.ColorGray:
			style = style.Faint(true)
		}
		p[c] = style
	}
	return p
}

// style returns the style for c, falling back to the terminal default.
func (p palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

var screenPalette = newPalette()

// statusStyle colors the footer status line.
var statusStyle = lipgloss.NewStyle().Bold(true)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = screenPalette.renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func (p palette) renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run strings.Builder
	runColor := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(p.style(runColor).Render(run.String()))
			run.Reset()
		}
	}

	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return sb.String()
}
