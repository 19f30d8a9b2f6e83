package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/uffo/internal/core"
)

// ansiColors maps core.Color to ANSI 256-colour codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorNavy:         lipgloss.Color("17"),
	core.ColorOlive:        lipgloss.Color("100"),
	core.ColorSky:          lipgloss.Color("117"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

var styleCache = map[colorPair]lipgloss.Style{}

// styleFor returns the lipgloss style of a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := styleCache[key]; ok {
		return st
	}

	st := lipgloss.NewStyle()
	if c, ok := ansiColors[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		st = st.Background(c)
	}
	styleCache[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
