package meteors

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// DefaultGlyph is the character meteors are drawn with.
const DefaultGlyph = '*'

// DefaultInitialMeteors is the population a game starts with.
const DefaultInitialMeteors = 10

// ErrInvalidOptions is returned by NewSession for unusable options.
var ErrInvalidOptions = errors.New("meteors: invalid options")

// Options configures a Session.
type Options struct {
	InitialMeteors int  // Meteors alive before the first input
	Glyph          rune // Meteor glyph, also what the collision check looks for
}

// DefaultOptions returns the options of the classic game.
func DefaultOptions() Options {
	return Options{
		InitialMeteors: DefaultInitialMeteors,
		Glyph:          DefaultGlyph,
	}
}

// Session runs one game on a render surface.
// The surface owns the cursor; the session moves it only in response to input.
type Session struct {
	surface core.Surface
	field   *Field
	glyph   rune
	score   int
	reason  core.Reason
}

// NewSession creates a game on surface. The surface must report valid bounds.
func NewSession(surface core.Surface, opts Options, rng *rand.Rand) (*Session, error) {
	if opts.InitialMeteors < 0 {
		return nil, fmt.Errorf("%w: negative meteor count %d", ErrInvalidOptions, opts.InitialMeteors)
	}
	if opts.Glyph == core.Blank || opts.Glyph == 0 {
		return nil, fmt.Errorf("%w: meteor glyph must not be blank", ErrInvalidOptions)
	}

	field, err := NewField(surface.Bounds(), opts.InitialMeteors, rng)
	if err != nil {
		return nil, fmt.Errorf("meteors: cannot create field: %w", err)
	}

	return &Session{
		surface: surface,
		field:   field,
		glyph:   opts.Glyph,
	}, nil
}

// Advance runs one tick for a single input event and returns the new state.
// A terminated session ignores further events.
func (s *Session) Advance(ev core.Event) core.GameState {
	if s.reason != core.ReasonNone {
		return s.State()
	}

	switch ev.Kind {
	case core.EventQuit:
		s.reason = core.ReasonQuit
		return s.State()
	case core.EventResize:
		if b := s.surface.Bounds(); b.Validate() == nil {
			c := b.Clip(s.surface.Cursor())
			s.surface.MoveCursor(c.Row, c.Col)
		}
	default:
		if ev.IsMove() {
			dr, dc := ev.Delta()
			c := s.surface.Cursor().Add(dr, dc)
			s.surface.MoveCursor(c.Row, c.Col)
		}
	}

	// The player may have walked into a meteor
	if IsHit(s.surface, s.glyph) {
		s.reason = core.ReasonHit
		return s.State()
	}

	b := s.surface.Bounds()
	s.field.SpawnOne(b)
	s.field.Step(s.erase, s.draw)
	s.field.ReapAndRespawn(b)

	// A meteor may have flown into the player
	if IsHit(s.surface, s.glyph) {
		s.reason = core.ReasonHit
		return s.State()
	}

	s.score++
	return s.State()
}

func (s *Session) erase(m Meteor) {
	m.Erase(s.surface)
}

func (s *Session) draw(m Meteor) {
	m.Draw(s.surface, s.glyph)
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.reason != core.ReasonNone,
		Reason:   s.reason,
	}
}

// Score returns the number of ticks survived.
func (s *Session) Score() int {
	return s.score
}

// Field exposes the simulation for inspection.
func (s *Session) Field() *Field {
	return s.field
}

// Glyph returns the meteor glyph.
func (s *Session) Glyph() rune {
	return s.glyph
}
