package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected Action
		isQuit   bool
	}{
		{"up", ActionUp, false},
		{"k", ActionUp, false},
		{"down", ActionDown, false},
		{"j", ActionDown, false},
		{"left", ActionLeft, false},
		{"h", ActionLeft, false},
		{"right", ActionRight, false},
		{"l", ActionRight, false},
		{"space", ActionPen, false},
		{"r", ActionRandom, false},
		{"d", ActionDarken, false},
		{"e", ActionEraser, false},
		{"c", ActionClear, false},
		{"n", ActionNewCanvas, false},
		{"ctrl+s", ActionSave, false},
		{"q", ActionQuit, true},
		{"ctrl+c", ActionQuit, true},
		{"z", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tc.key))
			if action != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.expected)
			}
			if isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) isQuit = %v, expected %v", tc.key, isQuit, tc.isQuit)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionPen.String() != "Pen" {
		t.Errorf("ActionPen.String() = %q, expected %q", ActionPen.String(), "Pen")
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action String() = %q, expected %q", Action(999).String(), "Unknown")
	}
}
