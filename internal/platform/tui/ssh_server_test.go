package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSessionModel(nil, testRuntimeConfig(), "alice", nil)
	b := NewSessionModel(nil, testRuntimeConfig(), "bob", nil)

	if a.sessionID == "" || b.sessionID == "" {
		t.Fatal("sessions should get an ID")
	}
	if a.sessionID == b.sessionID {
		t.Errorf("concurrent sessions must not share an ID: %s", a.sessionID)
	}
	if a.logger == nil {
		t.Error("a session without a server logger should still log somewhere")
	}
}

func TestSessionScoreboardStaysInSession(t *testing.T) {
	m := NewSessionModel(nil, testRuntimeConfig(), "alice", nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, ok := updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}

	if !m.inScores || m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard screen")
	}
	if m.quitting {
		t.Fatal("opening the scoreboard must not end the session")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, ok = updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}

	if m.inScores {
		t.Error("esc should leave the scoreboard")
	}
	if m.quitting {
		t.Error("leaving the scoreboard should return to the menu, not quit")
	}
}
