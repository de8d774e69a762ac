package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmelnik/tui-snake/internal/core"
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
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key      string
		want     core.Action
		wantQuit bool
	}{
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{"enter", core.ActionConfirm, false},
		{"b", core.ActionBack, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.want || isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.key, action, isQuit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("w"), &frame) {
		t.Error("steering key reported as quit")
	}
	if km.MapKeyToFrame(keyMsg("p"), &frame) {
		t.Error("pause key reported as quit")
	}

	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionPause) {
		t.Error("frame should accumulate actions across key presses")
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("quit key not reported as quit")
	}
}

// Two steering keys landing between ticks resolve by the frame's fixed
// priority, not by arrival order.
func TestMapKeyToFramePriority(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("d"), &frame)
	km.MapKeyToFrame(keyMsg("s"), &frame)

	if got := frame.Intent(); got != core.DirDown {
		t.Errorf("Intent() = %v, want %v", got, core.DirDown)
	}

	frame.Clear()
	if got := frame.Intent(); got != core.DirNone {
		t.Errorf("Intent() after Clear = %v, want DirNone", got)
	}
}

// Unmapped keys leave the frame untouched.
func TestMapKeyToFrameIgnoresUnknownKeys(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("x"), &frame) {
		t.Error("unknown key reported as quit")
	}
	if frame.Intent() != core.DirNone {
		t.Error("unknown key should not add actions to the frame")
	}
}
