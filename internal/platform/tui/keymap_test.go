package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickgame/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapLookup(t *testing.T) {
	km := DefaultGameKeyMap("tetris")

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"x", runeKey('x'), core.ActionAction},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"q", runeKey('q'), core.ActionTerminate},
		{"unbound letter", runeKey('z'), core.ActionIdle},
		{"ctrl+c is not an engine action", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionIdle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Lookup(tc.msg); got != tc.want {
				t.Errorf("Lookup(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestGameKeyMapHelpPerGame(t *testing.T) {
	if got := DefaultGameKeyMap("tetris").Action.Help().Desc; got != "hard drop" {
		t.Errorf("tetris action help = %q, expected %q", got, "hard drop")
	}
	if got := DefaultGameKeyMap("snake").Action.Help().Desc; got != "speed up" {
		t.Errorf("snake action help = %q, expected %q", got, "speed up")
	}
}

func TestMenuKeyMapLookup(t *testing.T) {
	km := DefaultMenuKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"vim up", runeKey('k'), MenuActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"vim down", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"q", runeKey('q'), MenuActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{"unbound", runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Lookup(tc.msg); got != tc.want {
				t.Errorf("Lookup(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
