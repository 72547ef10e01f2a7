package meteors

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

func newTestSession(t *testing.T, w, h, initial int) (*Session, *core.Screen) {
	t.Helper()
	screen := core.NewScreen(w, h)
	screen.MoveCursor(h/2, w/2)

	opts := DefaultOptions()
	opts.InitialMeteors = initial
	s, err := NewSession(screen, opts, newRNG(2024))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, screen
}

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		opts    Options
		wantErr error
	}{
		{"zero height", 10, 0, DefaultOptions(), core.ErrInvalidBounds},
		{"zero width", 0, 10, DefaultOptions(), core.ErrInvalidBounds},
		{"negative count", 10, 10, Options{InitialMeteors: -1, Glyph: '*'}, ErrInvalidOptions},
		{"blank glyph", 10, 10, Options{InitialMeteors: 1, Glyph: ' '}, ErrInvalidOptions},
		{"zero glyph", 10, 10, Options{InitialMeteors: 1}, ErrInvalidOptions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(core.NewScreen(tc.w, tc.h), tc.opts, newRNG(1))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewSession() error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestSessionStartsWithInitialMeteors(t *testing.T) {
	s, screen := newTestSession(t, 85, 40, DefaultInitialMeteors)

	if s.Field().Len() != DefaultInitialMeteors {
		t.Errorf("Len() = %d, expected %d", s.Field().Len(), DefaultInitialMeteors)
	}
	// Initial meteors are not drawn before the first tick
	if n := countGlyph(screen, DefaultGlyph); n != 0 {
		t.Errorf("screen shows %d meteor cells before the first tick", n)
	}
}

func TestSessionQuit(t *testing.T) {
	s, _ := newTestSession(t, 20, 10, 0)

	state := s.Advance(core.NewEvent(core.EventQuit))
	if !state.GameOver || state.Reason != core.ReasonQuit {
		t.Fatalf("Advance(Quit) = %+v, expected terminated by quit", state)
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, quit must not count as a tick", state.Score)
	}

	// Terminated sessions ignore input
	before := s.Field().Len()
	state = s.Advance(core.NewEvent(core.EventMoveUp))
	if state.Reason != core.ReasonQuit || s.Field().Len() != before {
		t.Errorf("Advance after quit changed state: %+v, Len %d -> %d", state, before, s.Field().Len())
	}
}

func TestSessionScoreCountsTicks(t *testing.T) {
	s, _ := newTestSession(t, 80, 24, DefaultInitialMeteors)

	events := []core.EventKind{
		core.EventMoveUp, core.EventMoveLeft, core.EventOther, core.EventMoveDown,
		core.EventMoveRight, core.EventResize, core.EventOther, core.EventMoveUp,
	}

	for i := 0; i < 40; i++ {
		before := s.Field().Len()
		state := s.Advance(core.NewEvent(events[i%len(events)]))
		if state.GameOver {
			if state.Reason != core.ReasonHit {
				t.Fatalf("unexpected termination %v", state.Reason)
			}
			return
		}
		if state.Score != i+1 {
			t.Fatalf("tick %d: Score = %d, expected %d", i, state.Score, i+1)
		}
		if s.Field().Len() != before+1 {
			t.Fatalf("tick %d: population %d -> %d, expected +1", i, before, s.Field().Len())
		}
	}
}

func TestSessionHitByPlayerMove(t *testing.T) {
	s, screen := newTestSession(t, 10, 10, 0)
	screen.MoveCursor(5, 5)
	screen.DrawAt(5, 6, DefaultGlyph)

	state := s.Advance(core.NewEvent(core.EventMoveRight))

	if state.Reason != core.ReasonHit {
		t.Fatalf("Reason = %v, expected hit", state.Reason)
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, expected 0", state.Score)
	}
	// The hit is detected before meteors move, so nothing was spawned
	if s.Field().Len() != 0 {
		t.Errorf("Len() = %d, expected no spawn after a pre-move hit", s.Field().Len())
	}
}

func TestSessionHitByMeteorMove(t *testing.T) {
	s, screen := newTestSession(t, 10, 10, 0)
	screen.MoveCursor(5, 5)
	s.Field().Add(Meteor{Pos: core.Point{Row: 5, Col: 4}, Shape: ShapeDot, Path: PathRight})

	state := s.Advance(core.NewEvent(core.EventOther))

	if state.Reason != core.ReasonHit {
		t.Fatalf("Reason = %v, expected hit", state.Reason)
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, the hit tick must not be scored", state.Score)
	}
}

func TestSessionCursorStaysOnGrid(t *testing.T) {
	s, screen := newTestSession(t, 10, 10, 0)
	screen.MoveCursor(0, 0)

	s.Advance(core.NewEvent(core.EventMoveUp))
	if c := screen.Cursor(); c != (core.Point{Row: 0, Col: 0}) {
		t.Errorf("cursor moved off the grid to %+v", c)
	}

	s.Advance(core.NewEvent(core.EventMoveLeft))
	if c := screen.Cursor(); c != (core.Point{Row: 0, Col: 0}) {
		t.Errorf("cursor moved off the grid to %+v", c)
	}
}

func TestSessionResizeClampsCursor(t *testing.T) {
	s, screen := newTestSession(t, 20, 20, 0)
	screen.MoveCursor(15, 15)

	screen.Resize(10, 10)
	s.Advance(core.NewResizeEvent(10, 10))

	if c := screen.Cursor(); !screen.Bounds().Contains(c) {
		t.Errorf("cursor %+v outside resized bounds", c)
	}
}

func TestSessionReapsAfterShrink(t *testing.T) {
	s, screen := newTestSession(t, 40, 40, 0)
	screen.MoveCursor(0, 0)
	s.Field().Add(Meteor{Pos: core.Point{Row: 30, Col: 30}, Shape: ShapeDot, Path: PathDown})

	screen.Resize(20, 20)
	state := s.Advance(core.NewResizeEvent(20, 20))
	if state.GameOver {
		t.Skip("random spawn hit the cursor")
	}

	for _, m := range s.Field().Meteors() {
		if !screen.Bounds().Contains(m.Pos) {
			t.Errorf("meteor %+v left outside the shrunk board", m)
		}
	}
}
