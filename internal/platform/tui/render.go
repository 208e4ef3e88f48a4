package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blockblast/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// colorStyles maps screen colors to terminal styles. Block hues use the
// 256-color palette so adjacent pieces stay distinguishable.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),

	core.ColorRed:     fg("196"),
	core.ColorOrange:  fg("208"),
	core.ColorYellow:  fg("226"),
	core.ColorGreen:   fg("46"),
	core.ColorMint:    fg("121"),
	core.ColorCyan:    fg("51"),
	core.ColorBlue:    fg("33"),
	core.ColorPurple:  fg("129"),
	core.ColorViolet:  fg("99"),
	core.ColorMagenta: fg("201"),
	core.ColorPink:    fg("218"),
	core.ColorStone:   fg("240"),
	core.ColorGold:    fg("220").Bold(true),

	core.ColorText:      fg("252"),
	core.ColorMuted:     fg("243"),
	core.ColorAccent:    fg("226").Bold(true),
	core.ColorWarning:   fg("203").Bold(true),
	core.ColorHighlight: fg("231").Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one style so the output carries few
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
