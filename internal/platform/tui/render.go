package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocks/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorBlack:   "0",
	core.ColorRed:     "9",
	core.ColorGreen:   "10",
	core.ColorYellow:  "11",
	core.ColorBlue:    "12",
	core.ColorMagenta: "13",
	core.ColorCyan:    "14",
	core.ColorWhite:   "15",
	core.ColorOrange:  "208",
	core.ColorPurple:  "129",
	core.ColorGray:    "245",
}

// Styles holds the lipgloss styles for one output. SSH sessions need their
// own renderer so color detection follows the client terminal.
type Styles struct {
	cells map[core.Color]lipgloss.Style
	Help  lipgloss.Style
}

// NewStyles builds styles for the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		cells: make(map[core.Color]lipgloss.Style, len(colorCodes)+1),
		Help:  r.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1),
	}
	s.cells[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		s.cells[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return s
}

// DefaultStyles builds styles for the local terminal.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st.cells[startColor]
			if !ok {
				style = st.cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
