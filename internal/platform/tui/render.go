package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core colors to terminal color codes.
var palette = map[core.Color]string{
	core.ColorGreen:        "2",
	core.ColorBrightGreen:  "10",
	core.ColorOrange:       "208",
	core.ColorBrightYellow: "11",
	core.ColorBrightRed:    "9",
	core.ColorWhite:        "7",
	core.ColorBrightWhite:  "15",
	core.ColorGray:         "245",
}

// styleFor returns the foreground style for c. Unknown colors render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	code, ok := palette[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c := range palette {
		styles[c] = styleFor(c)
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
)

// renderFooter joins the help line with optional status badges.
func renderFooter(helpView string, badges ...string) string {
	parts := []string{footerStyle.Render(helpView)}
	for _, b := range badges {
		if b != "" {
			parts = append(parts, badgeStyle.Render(b))
		}
	}
	return strings.Join(parts, " ")
}
