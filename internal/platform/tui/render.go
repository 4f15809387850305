package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tilePalette maps core.Color to ANSI 256 codes. Low tiles stay pale and
// warm up towards the win tile, which is drawn bold.
var tilePalette = map[core.Color]string{
	core.ColorGray:          "245",
	core.ColorWhite:         "252",
	core.ColorBrightWhite:   "230",
	core.ColorYellow:        "222",
	core.ColorOrange:        "208",
	core.ColorRed:           "203",
	core.ColorBrightRed:     "196",
	core.ColorMagenta:       "176",
	core.ColorBrightMagenta: "213",
	core.ColorGreen:         "114",
	core.ColorBrightGreen:   "46",
	core.ColorCyan:          "51",
	core.ColorBlue:          "33",
	core.ColorBrightYellow:  "226",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(tilePalette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range tilePalette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	styles[core.ColorBrightYellow] = styles[core.ColorBrightYellow].Bold(true)
	return styles
}

// styleFor returns the style for a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Extra room for escape sequences
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow styles one row, emitting a single escape sequence per run of
// equally colored cells.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	runColor := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
