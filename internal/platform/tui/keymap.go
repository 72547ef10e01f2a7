package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
)

// GameKeyMap holds the in-game key bindings.
// Movement and quit come from the YAML config; the rest are fixed.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
}

// NewGameKeyMap builds bindings from the configured key names.
func NewGameKeyMap(keys config.KeysConfig) GameKeyMap {
	return GameKeyMap{
		Up:    binding(keys.Up, "up"),
		Down:  binding(keys.Down, "down"),
		Left:  binding(keys.Left, "left"),
		Right: binding(keys.Right, "right"),
		Quit:  binding(keys.Quit, "quit"),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// DefaultGameKeyMap returns the bindings of the embedded config.
func DefaultGameKeyMap() GameKeyMap {
	return NewGameKeyMap(config.DefaultMeteorsConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Event translates a key press into a game event.
// Keys without a binding become EventOther and still advance the game.
func (k GameKeyMap) Event(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.NewEvent(core.EventQuit)
	case key.Matches(msg, k.Up):
		return core.NewEvent(core.EventMoveUp)
	case key.Matches(msg, k.Down):
		return core.NewEvent(core.EventMoveDown)
	case key.Matches(msg, k.Left):
		return core.NewEvent(core.EventMoveLeft)
	case key.Matches(msg, k.Right):
		return core.NewEvent(core.EventMoveRight)
	}
	return core.NewEvent(core.EventOther)
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Down, k.Up, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
