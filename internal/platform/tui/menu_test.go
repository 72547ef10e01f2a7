package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-meteors/internal/registry"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

func init() {
	registry.Register("script", func() registry.Game {
		return &scriptGame{hitAfter: 2}
	})
}

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
	}
	return m, cmd
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if len(m.items) == 0 {
		t.Fatal("menu lists no games")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil {
		t.Error("selecting a game should end the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != m.items[0].GameID {
		t.Errorf("Selected() = %+v, expected %q", m.Selected(), m.items[0].GameID)
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v, expected 120x40", cfg)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		visible  int
		expected string
	}{
		{"plain", "ab", 6, 0, "  ab"},
		{"styled", "\x1b[1mab\x1b[0m", 6, 2, "  \x1b[1mab\x1b[0m"},
		{"too wide", "abcdef", 4, 0, "abcdef"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := centerText(tc.text, tc.width, tc.visible); got != tc.expected {
				t.Errorf("centerText(%q) = %q, expected %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := NewSessionModel(store, testConfig(), DefaultGameKeyMap(), nil)

	// Walk the cursor to the scripted game
	for m.menu.items[m.menu.cursor].GameID != "script" {
		m, _ = sendSession(t, m, runeKey('j'))
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v after select, expected game", m.view)
	}

	// One survived tick, then a hit
	m, _ = sendSession(t, m, runeKey('x'), runeKey('x'))
	if res := m.game.Result(); res.Score != 1 {
		t.Errorf("Result() = %+v, expected score 1", res)
	}

	m, _ = sendSession(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Fatalf("view = %v after back, expected menu", m.view)
	}
	if !strings.Contains(m.View(), "best 1") {
		t.Errorf("menu should show the new high score:\n%s", m.View())
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v after tab, expected scores", m.view)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v after esc, expected menu", m.view)
	}

	m, cmd := sendSession(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q in the menu should end the session")
	}
}
