package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-meteors/internal/storage"
)

func TestScoreboardOutcomeFilter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("script", 10, storage.OutcomeHit)
	store.SaveScore("script", 30, storage.OutcomeQuit)
	store.SaveScore("script", 20, storage.OutcomeHit)

	m := NewScoreboardModel(store, 80, 30)
	m.SelectGame("script")

	tests := []struct {
		outcome string
		ranks   []string
		scores  []string
	}{
		{storage.OutcomeAny, []string{"#1", "#2 last", "#3"}, []string{"30", "20", "10"}},
		{storage.OutcomeHit, []string{"#1 last", "#2"}, []string{"20", "10"}},
		{storage.OutcomeQuit, []string{"#1"}, []string{"30"}},
	}

	for i, tc := range tests {
		if i > 0 {
			next, _ := m.Update(runeKey('f'))
			m = next.(ScoreboardModel)
		}
		if m.Outcome() != tc.outcome {
			t.Fatalf("Outcome() = %q, expected %q", m.Outcome(), tc.outcome)
		}

		rows := m.Rows()
		if len(rows) != len(tc.ranks) {
			t.Fatalf("filter %q: %d rows, expected %d", tc.outcome, len(rows), len(tc.ranks))
		}
		for j, row := range rows {
			if row[0] != tc.ranks[j] || row[1] != tc.scores[j] {
				t.Errorf("filter %q row %d = %v, expected %s %s", tc.outcome, j, row, tc.ranks[j], tc.scores[j])
			}
		}
	}

	// The filter wraps back to all games
	next, _ := m.Update(runeKey('f'))
	m = next.(ScoreboardModel)
	if m.Outcome() != storage.OutcomeAny {
		t.Errorf("Outcome() = %q after a full cycle, expected all", m.Outcome())
	}
}

func TestScoreboardEmptyFilterMessage(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("script", 5, storage.OutcomeHit)

	m := NewScoreboardModel(store, 80, 30)
	m.SelectGame("script")
	for range 2 {
		next, _ := m.Update(runeKey('f'))
		m = next.(ScoreboardModel)
	}

	if !strings.Contains(m.View(), "No games ended by quit") {
		t.Errorf("View() should explain the empty quit filter:\n%s", m.View())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		back bool
		quit bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b", runeKey('b'), true, false},
		{"q", runeKey('q'), false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, cmd := NewScoreboardModel(nil, 80, 30).Update(tc.msg)
			m := next.(ScoreboardModel)
			if cmd == nil {
				t.Error("leaving the scoreboard should end its program")
			}
			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quit {
				t.Errorf("back=%v quit=%v, expected back=%v quit=%v", m.IsGoingBack(), m.IsQuitting(), tc.back, tc.quit)
			}
		})
	}
}
