package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlack:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorSkyBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// tooSmallStyle renders the resize hint.
var tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

// styleFor returns the style for a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			// Blank runs need no escape codes
			text := run.String()
			if strings.TrimSpace(text) == "" {
				sb.WriteString(text)
				continue
			}
			sb.WriteString(styleFor(color).Render(text))
		}
	}
	return sb.String()
}

// renderTooSmall centers a resize hint in a width x height area.
func renderTooSmall(width, height, minCols, minRows int) string {
	msg := tooSmallStyle.Render("Terminal too small") + "\n" +
		lipgloss.NewStyle().Render(sizeHint(width, height, minCols, minRows))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
