package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dww100/untitled-penguin-game/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionPush, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"w", MenuActionUp},
		{"k", MenuActionUp},
		{"s", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestDirectionAction(t *testing.T) {
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	for _, d := range dirs {
		if !DirectionAction(d) {
			t.Errorf("DirectionAction(%v) = false, want true", d)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionPush, core.ActionPause, core.ActionQuit} {
		if DirectionAction(a) {
			t.Errorf("DirectionAction(%v) = true, want false", a)
		}
	}
}
