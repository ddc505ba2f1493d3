package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Board layout in screen characters. Each field cell is two characters wide.
const (
	cellWidth  = 2
	boardW     = core.FieldWidth*cellWidth + 2
	boardH     = core.FieldHeight + 2
	panelGap   = 1
	panelW     = 18
	boardTotal = boardW + panelGap + panelW
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// NewBoardScreen allocates a screen sized for DrawFrame.
func NewBoardScreen() *core.Screen {
	return core.NewScreen(boardTotal, boardH)
}

// DrawFrame draws the playfield, the side panel and any status overlay.
func DrawFrame(s *core.Screen, f core.Frame, title string, lastScore int) {
	s.Clear()

	field := core.NewRect(0, 0, boardW, boardH)
	s.DrawBox(field)
	for y := range core.FieldHeight {
		for x := range core.FieldWidth {
			drawCell(s, field.X+1+x*cellWidth, field.Y+1+y, f.Field.Get(x, y), true)
		}
	}

	drawPanel(s, f, title, lastScore)
	drawOverlay(s, field, f)
}

// drawCell draws one field cell. Empty cells get a faint dot when dotted is set.
func drawCell(s *core.Screen, sx, sy int, c core.Cell, dotted bool) {
	if c.Filled() {
		s.DrawTextColored(sx, sy, "[]", core.CellColor(c))
		return
	}
	if dotted {
		s.DrawTextColored(sx, sy, " .", core.ColorGray)
	}
}

func drawPanel(s *core.Screen, f core.Frame, title string, lastScore int) {
	panel := core.NewRect(boardW+panelGap, 0, panelW, boardH)
	s.DrawBox(panel)

	x := panel.X + 2
	y := panel.Y + 1
	s.DrawTextColored(x, y, strings.ToUpper(title), core.ColorWhite)
	y += 2

	stats := []struct {
		label string
		value int
	}{
		{"Score", f.Score},
		{"High", f.HighScore},
		{"Level", f.Level},
		{"Speed", f.Speed},
		{"Last", lastScore},
	}
	for _, st := range stats {
		s.DrawTextColored(x, y, st.label, core.ColorGray)
		s.DrawText(x, y+1, fmt.Sprintf("%d", st.value))
		y += 2
	}

	if f.Next == nil {
		return
	}
	y++
	s.DrawTextColored(x, y, "Next", core.ColorGray)
	y++
	for by := range core.BlockSize {
		for bx := range core.BlockSize {
			drawCell(s, x+bx*cellWidth, y+by, f.Next[by][bx], false)
		}
	}
}

func drawOverlay(s *core.Screen, field core.Rect, f core.Frame) {
	var headline, hint string
	switch {
	case f.Won:
		headline, hint = "YOU WIN", "enter: new game"
	case f.Over:
		headline, hint = "GAME OVER", "enter: play again"
	case f.Paused:
		headline, hint = "PAUSED", "enter: play"
	default:
		return
	}

	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)
	mid := inner.Y + inner.H/2 - 1
	s.DrawRect(core.NewRect(inner.X, mid-1, inner.W, 4), ' ')
	s.DrawTextCentered(inner, mid, headline, core.ColorYellow)
	s.DrawTextCentered(inner, mid+1, hint, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
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
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
