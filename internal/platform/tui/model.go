// Package tui provides the Bubble Tea integration for the meteors platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/logging"
	"github.com/vovakirdan/tui-meteors/internal/registry"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

// Options are the collaborators of a game model. All fields are optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Keys   *GameKeyMap
	// AllowBack lets the player return to a menu after the game ends.
	AllowBack bool
}

// Result reports how a game run ended.
type Result struct {
	GameID string
	Score  int
	Reason core.Reason
}

// Model is the Bubble Tea model for running a game.
// The game advances exactly one tick per key press or terminal resize.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       GameKeyMap
	config     core.RuntimeConfig
	fixedSeed  bool
	allowBack  bool
	gameState  core.GameState
	err        error // Reset failure, typically a terminal that is too small
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	m := Model{
		game:      game,
		store:     opts.Store,
		logger:    opts.Logger,
		keys:      DefaultGameKeyMap(),
		config:    cfg,
		fixedSeed: cfg.Seed != 0,
		allowBack: opts.AllowBack,
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	// Use time-based seed if not specified
	if m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}

	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.reset()
	return m
}

// reset starts a new game with the current config.
func (m *Model) reset() {
	m.err = m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	if m.err != nil {
		m.logger.Warn("cannot start game", "game", m.game.ID(), "error", m.err)
		return
	}
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
}

// Init implements tea.Model. The game was already reset by NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.err != nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.gameState.GameOver {
		return m.handleGameOverKey(msg)
	}

	return m.step(m.keys.Event(msg))
}

// handleGameOverKey handles the restart/back/quit choice after a hit.
func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Restart):
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.reset()
	case m.allowBack && key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Bubble Tea reports the initial size too; that is not a resize
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.err != nil {
		// The terminal may now be large enough
		m.reset()
		return m, nil
	}
	if m.gameState.GameOver {
		return m, nil
	}

	return m.step(core.NewResizeEvent(msg.Width, msg.Height))
}

// step advances the game by one tick and handles termination.
func (m Model) step(ev core.Event) (tea.Model, tea.Cmd) {
	result := m.game.Step(ev)
	m.gameState = result.State

	if !m.gameState.GameOver {
		return m, nil
	}

	m.logger.Info("game over", "game", m.game.ID(),
		"score", m.gameState.Score, "reason", m.gameState.Reason)
	m.saveScore()

	if m.gameState.Reason == core.ReasonQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScore records the final score once per game.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 || m.store == nil {
		m.scoreSaved = true
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Reason.String()); err != nil {
		m.logger.Error("cannot save score", "game", m.game.ID(), "error", err)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", config.AppDir, "screenshots"))
	if err != nil {
		m.logger.Warn("cannot resolve screenshot directory", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("\n  %v\n\n  Enlarge the terminal or press %s to quit.\n",
			m.err, m.keys.Quit.Help().Key)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Result returns the outcome of the current game.
func (m Model) Result() Result {
	return Result{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Reason: m.gameState.Reason,
	}
}

// Err returns the error of the last reset, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the player requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), err
	}

	m, ok := final.(Model)
	if !ok {
		return model.Result(), nil
	}
	if m.Err() != nil && !m.gameState.GameOver {
		return m.Result(), m.Err()
	}
	return m.Result(), nil
}
