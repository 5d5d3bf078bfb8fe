package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/console-shooter/internal/core"
	"github.com/vovakirdan/console-shooter/internal/games/shooter"
)

// glyphStyles colors the field glyphs. Anything else, including the
// status line, renders unstyled.
var glyphStyles = map[rune]lipgloss.Style{
	shooter.PlayerChar:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	shooter.EnemyChar:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	shooter.BulletChar:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	shooter.HorizonChar: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var plainStyle = lipgloss.NewStyle()

// styleClass returns the glyphStyles key for r, or 0 for unstyled runes.
func styleClass(r rune) rune {
	if _, ok := glyphStyles[r]; ok {
		return r
	}
	return 0
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := []rune(s.Row(y))
		x := 0
		for x < len(row) {
			class := styleClass(row[x])

			var run strings.Builder
			for x < len(row) && styleClass(row[x]) == class {
				run.WriteRune(row[x])
				x++
			}

			style, ok := glyphStyles[class]
			if !ok {
				style = plainStyle
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
