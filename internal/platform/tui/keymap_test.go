package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// keyMsg builds the message Bubble Tea sends for a named key.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		column int
	}{
		{"left", core.ActionLeft, core.NoColumn},
		{"a", core.ActionLeft, core.NoColumn},
		{"right", core.ActionRight, core.NoColumn},
		{"space", core.ActionDrop, core.NoColumn},
		{"enter", core.ActionDrop, core.NoColumn},
		{"0", core.ActionDrop, 0},
		{"3", core.ActionDrop, 3},
		{"9", core.ActionDrop, 9},
		{"r", core.ActionRestart, core.NoColumn},
		{"esc", core.ActionBack, core.NoColumn},
		{"q", core.ActionQuit, core.NoColumn},
		{"ctrl+c", core.ActionQuit, core.NoColumn},
		{"x", core.ActionNone, core.NoColumn},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, column := km.MapKey(keyMsg(tt.key))
			if action != tt.action || column != tt.column {
				t.Errorf("MapKey(%q) = (%v, %d), want (%v, %d)", tt.key, action, column, tt.action, tt.column)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("5"), &frame) {
		t.Fatal("digit should not quit")
	}
	if !frame.HasColumn() || frame.Column != 5 {
		t.Errorf("Column = %d, want 5", frame.Column)
	}

	km.MapKeyToFrame(keyMsg("left"), &frame)
	if !frame.Has(core.ActionLeft) {
		t.Error("left not recorded")
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]MenuAction{
		"up":    MenuActionUp,
		"j":     MenuActionDown,
		"enter": MenuActionSelect,
		"esc":   MenuActionBack,
		"tab":   MenuActionStandings,
		"q":     MenuActionQuit,
		"z":     MenuActionNone,
	}

	for k, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(k)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", k, got, want)
		}
	}
}
