package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/word-moles/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyHoles(t *testing.T) {
	km := NewKeyMapper()
	for i := 0; i < 6; i++ {
		action, quit := km.MapKey(runeKey(rune('1' + i)))
		if quit {
			t.Fatalf("key %d reported quit", i+1)
		}
		hole, ok := action.Hole()
		if !ok || hole != i {
			t.Errorf("key %d = %v, want hole %d", i+1, action, i)
		}
	}
	if action, _ := km.MapKey(runeKey('7')); action != core.ActionNone {
		t.Errorf("key 7 = %v, want None", action)
	}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDismiss, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('r'), core.ActionReplay, false},
		{runeKey('x'), core.ActionNone, false},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v,%v want %v,%v", tt.msg.String(), got, quit, tt.want, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(runeKey('k')); got != MenuActionUp {
		t.Errorf("k = %v, want up", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want select", got)
	}
}
