// Package registry maps variant IDs to game constructors. Variants add
// themselves from init(), so the CLI, the menu and the SSH server can list
// and start them by ID alone.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable variant. It holds only simulation state; frontends
// translate their input into core.Events and display what Render draws.
type Game interface {
	// ID is the variant key used on the command line and in the score table.
	ID() string

	Title() string

	// Reset starts a new game. It fails when the variant cannot be played
	// with cfg, for instance when the terminal has no room for the board.
	Reset(cfg core.RuntimeConfig) error

	// Step applies one input event; every event is exactly one tick.
	Step(ev core.Event) core.StepResult

	Render(dst *core.Screen)

	State() core.GameState
}

// Describer is implemented by variants that carry a one-line description.
type Describer interface {
	Description() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory returns a fresh, not yet reset game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics on a duplicate ID, which is a
// programming error in some init().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	info := GameInfo{ID: id, Title: sample.Title()}
	if d, ok := sample.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Lookup returns the metadata of a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
