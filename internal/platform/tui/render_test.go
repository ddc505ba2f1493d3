package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickgame/internal/core"
)

func TestDrawFrameField(t *testing.T) {
	var f core.Frame
	f.Field.Set(0, 0, 7)
	f.Field.Set(9, 19, 2)

	s := NewBoardScreen()
	DrawFrame(s, f, "Tetris", 0)

	if s.Get(0, 0) != '┌' || s.Get(boardW-1, boardH-1) != '┘' {
		t.Fatal("field box should frame the playfield")
	}

	g := s.GetGlyph(1, 1)
	if g.Rune != '[' || g.Color != core.CellColor(7) {
		t.Errorf("cell (0,0) = %+v, expected '[' in cyan", g)
	}
	if s.Get(1+9*cellWidth+1, 20) != ']' {
		t.Error("cell (9,19) should be drawn in the bottom-right corner")
	}
	if s.Get(4, 1) != '.' {
		t.Errorf("empty cell should be dotted, got %q", s.Get(4, 1))
	}
}

func TestDrawFramePanel(t *testing.T) {
	next := core.Block{}
	next[2][1] = 3
	f := core.Frame{Score: 1200, HighScore: 4000, Level: 3, Speed: 6, Next: &next}

	s := NewBoardScreen()
	DrawFrame(s, f, "Tetris", 700)
	out := s.String()

	for _, want := range []string{"TETRIS", "1200", "4000", "Level", "Next", "700"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel should contain %q", want)
		}
	}
	if !strings.Contains(out, "[]") {
		t.Error("next preview should draw its filled cell")
	}
}

func TestDrawFrameWithoutPreview(t *testing.T) {
	s := NewBoardScreen()
	DrawFrame(s, core.Frame{Level: 1}, "Snake", 0)

	if strings.Contains(s.String(), "Next") {
		t.Error("games without a preview should not show the Next label")
	}
}

func TestDrawFrameOverlay(t *testing.T) {
	tests := []struct {
		name  string
		frame core.Frame
		want  string
	}{
		{"paused", core.Frame{Paused: true}, "PAUSED"},
		{"game over", core.Frame{Over: true}, "GAME OVER"},
		{"win", core.Frame{Won: true}, "YOU WIN"},
		{"win beats paused", core.Frame{Won: true, Paused: true}, "YOU WIN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewBoardScreen()
			DrawFrame(s, tc.frame, "Snake", 0)
			if !strings.Contains(s.String(), tc.want) {
				t.Errorf("expected overlay %q", tc.want)
			}
		})
	}

	s := NewBoardScreen()
	DrawFrame(s, core.Frame{}, "Snake", 0)
	for _, text := range []string{"PAUSED", "GAME OVER", "YOU WIN"} {
		if strings.Contains(s.String(), text) {
			t.Errorf("running game should not show %q", text)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "[]", core.ColorRed)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "[]") {
		t.Errorf("first line lost text: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "cd") {
		t.Errorf("second line = %q, expected to start with cd", lines[1])
	}
}

func TestDrawFrameOverlayClearsField(t *testing.T) {
	var f core.Frame
	for y := range core.FieldHeight {
		for x := range core.FieldWidth {
			f.Field.Set(x, y, 1)
		}
	}
	f.Over = true

	s := NewBoardScreen()
	DrawFrame(s, f, "Tetris", 0)

	// Row 9 is the blank line above the headline.
	for x := 1; x < boardW-1; x++ {
		if g := s.GetGlyph(x, 9); g.Rune != ' ' {
			t.Fatalf("overlay backdrop at (%d, 9) = %q, expected blank", x, g.Rune)
		}
	}
	x := 1 + (boardW-2-len("GAME OVER"))/2
	if g := s.GetGlyph(x, 10); g.Rune != 'G' || g.Color != core.ColorYellow {
		t.Errorf("headline start = %+v, expected yellow 'G'", g)
	}
}
