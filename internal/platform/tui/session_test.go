package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	instantDrops(t)
	m := NewSessionModel(nil, nil, testConfig())

	m = sessionUpdate(t, m, keyMsg("enter"))
	if m.view != viewGame || m.game == nil {
		t.Fatalf("view = %v, want game", m.view)
	}

	m = sessionUpdate(t, m, keyMsg("esc"))
	if m.view != viewMenu || m.game != nil {
		t.Errorf("view = %v, want menu", m.view)
	}
}

func TestSessionStandings(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())

	m = sessionUpdate(t, m, keyMsg("tab"))
	if m.view != viewStandings {
		t.Fatalf("view = %v, want standings", m.view)
	}

	m = sessionUpdate(t, m, keyMsg("esc"))
	if m.view != viewMenu {
		t.Errorf("view = %v, want menu", m.view)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())

	next, cmd := m.Update(keyMsg("q"))
	if !next.(SessionModel).quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit")
	}
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testConfig())
	view := m.View()

	for _, title := range []string{"Classic", "Mini", "Five in a Row"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu is missing %q", title)
		}
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(MenuModel)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != m.items[1].GameID {
		t.Errorf("Selected = %+v, want second item", m.Selected())
	}
}
