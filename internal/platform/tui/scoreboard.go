package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-meteors/internal/registry"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

const (
	maxScores   = 100
	wideTableAt = 60 // terminal width from which the date column is widened
	lastMarker  = " last"
)

// scoreFilter narrows the table to games that ended one way.
type scoreFilter struct {
	outcome string
	label   string
}

var scoreFilters = []scoreFilter{
	{storage.OutcomeAny, "all"},
	{storage.OutcomeHit, "hit"},
	{storage.OutcomeQuit, "quit"},
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Outcome key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Outcome, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.Outcome}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "variant")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Outcome: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "hit/quit filter")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best games of each variant. The most recent
// game is marked so a player can find the score they just set.
type ScoreboardModel struct {
	store     *storage.Store
	games     []registry.GameInfo
	current   int
	filter    int
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered variant.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 12
	if m.width >= wideTableAt {
		dateW = 18
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 4 + len(lastMarker)},
			{Title: "Score", Width: 8},
			{Title: "Outcome", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the scores of the current variant under the current filter.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
		if scores, err := m.store.TopScoresByOutcome(id, scoreFilters[m.filter].outcome, maxScores); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rank := fmt.Sprintf("#%d", i+1)
		if m.stats != nil && e.ID == m.stats.LastID {
			rank += lastMarker
		}
		rows[i] = table.Row{rank, fmt.Sprint(e.Score), e.Outcome, e.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycleGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Outcome):
			m.filter = (m.filter + 1) % len(scoreFilters)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width, len("HIGH SCORES")))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = sbActiveStyle.Render(g.Title)
		} else {
			tabs[i] = sbIdleStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	b.WriteString(centerText(line, m.width, lipgloss.Width(line)))
	b.WriteString("\n")

	filters := make([]string, len(scoreFilters))
	for i, f := range scoreFilters {
		if i == m.filter {
			filters[i] = "[" + f.label + "]"
		} else {
			filters[i] = f.label
		}
	}
	filterLine := "ended by: " + strings.Join(filters, " ")
	b.WriteString(sbDimStyle.Render(centerText(filterLine, m.width, 0)))
	b.WriteString("\n")

	if s := m.stats; s != nil && s.GamesCount > 0 {
		summary := fmt.Sprintf("%d games  |  best %d  |  avg %.1f  |  %d hit, %d quit",
			s.GamesCount, s.HighScore, s.AvgScore, s.Hits, s.GamesCount-s.Hits)
		b.WriteString(sbDimStyle.Render(centerText(summary, m.width, 0)))
	}
	b.WriteString("\n")

	b.WriteString(sbBoxStyle.Render(m.tableView()))
	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) > 0 {
		return m.table.View()
	}
	msg := "No scores yet. Dodge some meteors first!"
	if f := scoreFilters[m.filter]; f.outcome != storage.OutcomeAny {
		msg = fmt.Sprintf("No games ended by %s yet.", f.label)
	}
	return sbDimStyle.Italic(true).Padding(1, 2).Render(msg)
}

// Outcome returns the active outcome filter; empty means all games.
func (m ScoreboardModel) Outcome() string {
	return scoreFilters[m.filter].outcome
}

// Rows returns the table rows currently shown.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// SelectGame switches to gameID if it is registered.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, g := range m.games {
		if g.ID == gameID {
			m.current = i
			m.reload()
			return
		}
	}
}

// RunScoreboard runs the scoreboard as its own program, preselecting gameID
// when it is not empty. goBack is false when the player quit.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)
	if gameID != "" {
		model.SelectGame(gameID)
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
