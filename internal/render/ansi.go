package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/landsim/internal/core"
)

// RenderANSI converts a Screen buffer to a styled string for a terminal.
// Adjacent cells with the same style share one escape sequence. A coloured
// SkyRune cell fills with its colour; every other coloured cell uses it as
// foreground over the screen background.
func RenderANSI(s *core.Screen) string {
	type key struct {
		color core.Color
		fill  bool
	}
	keyOf := func(c core.Cell) key {
		return key{color: c.Color, fill: c.Rune == SkyRune && c.Color.Alpha() != 0}
	}

	styles := make(map[key]lipgloss.Style)
	styleFor := func(k key) lipgloss.Style {
		if st, ok := styles[k]; ok {
			return st
		}
		st := lipgloss.NewStyle()
		switch {
		case k.fill:
			st = st.Background(lipgloss.Color(k.color.Hex()))
		default:
			if k.color.Alpha() != 0 {
				st = st.Foreground(lipgloss.Color(k.color.Hex()))
			}
			if bg := s.Background(); bg.Alpha() != 0 {
				st = st.Background(lipgloss.Color(bg.Hex()))
			}
		}
		styles[k] = st
		return st
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
