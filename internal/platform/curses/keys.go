package curses

import (
	"slices"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdown",
}

// KeyName returns the name of a key press in the notation used by the
// YAML config ("k", "up", "ctrl+c"), so one keymap serves both frontends.
func KeyName(ev *tcell.EventKey) string {
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + string(unicode.ToLower(r))
		}
		if r == ' ' {
			return " "
		}
		return string(r)
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+ev.Key()-tcell.KeyCtrlA))
	}

	return strings.ToLower(ev.Name())
}

// EventFor maps a key name to a game event using the configured keys.
func EventFor(name string, keys config.KeysConfig) core.Event {
	switch {
	case slices.Contains(keys.Quit, name):
		return core.NewEvent(core.EventQuit)
	case slices.Contains(keys.Up, name):
		return core.NewEvent(core.EventMoveUp)
	case slices.Contains(keys.Down, name):
		return core.NewEvent(core.EventMoveDown)
	case slices.Contains(keys.Left, name):
		return core.NewEvent(core.EventMoveLeft)
	case slices.Contains(keys.Right, name):
		return core.NewEvent(core.EventMoveRight)
	}
	return core.NewEvent(core.EventOther)
}
