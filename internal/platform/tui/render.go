package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// styleCache memoizes lipgloss styles per cell style.
type styleCache map[core.Style]lipgloss.Style

func (c styleCache) get(st core.Style) lipgloss.Style {
	if ls, ok := c[st]; ok {
		return ls
	}
	ls := lipgloss.NewStyle().Bold(st.Bold)
	if st.Fg != "" {
		ls = ls.Foreground(lipgloss.Color(st.Fg))
	}
	if st.Bg != "" {
		ls = ls.Background(lipgloss.Color(st.Bg))
	}
	c[st] = ls
	return ls
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
