package curses

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/games/meteors"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func TestSurfaceDrawErase(t *testing.T) {
	screen := newSimScreen(t)
	s := NewSurface(screen, core.Bounds{Height: 10, Width: 20})

	s.DrawAt(3, 4, '*')
	if got := s.GlyphAt(3, 4); got != '*' {
		t.Errorf("GlyphAt(3, 4) = %q, expected '*'", got)
	}
	if r, _, _, _ := screen.GetContent(4, 3); r != '*' {
		t.Errorf("terminal cell (4, 3) = %q, expected '*'", r)
	}

	s.EraseAt(3, 4)
	if got := s.GlyphAt(3, 4); got != core.Blank {
		t.Errorf("GlyphAt after erase = %q, expected blank", got)
	}
}

func TestSurfaceClipsToBounds(t *testing.T) {
	screen := newSimScreen(t)
	s := NewSurface(screen, core.Bounds{Height: 5, Width: 5})

	s.DrawAt(7, 7, '*')
	if r, _, _, _ := screen.GetContent(7, 7); r == '*' {
		t.Error("DrawAt outside bounds reached the terminal")
	}
	if got := s.GlyphAt(-1, 2); got != core.Blank {
		t.Errorf("GlyphAt(-1, 2) = %q, expected blank", got)
	}
}

func TestSurfaceCursor(t *testing.T) {
	screen := newSimScreen(t)
	s := NewSurface(screen, core.Bounds{Height: 10, Width: 10})

	s.MoveCursor(4, 6)
	if c := s.Cursor(); c != (core.Point{Row: 4, Col: 6}) {
		t.Errorf("Cursor() = %+v, expected (4,6)", c)
	}

	s.MoveCursor(10, 6)
	if c := s.Cursor(); c != (core.Point{Row: 4, Col: 6}) {
		t.Errorf("cursor moved off the board to %+v", c)
	}

	s.SetBounds(core.Bounds{Height: 3, Width: 3})
	if c := s.Cursor(); c != (core.Point{Row: 2, Col: 2}) {
		t.Errorf("Cursor() after shrink = %+v, expected (2,2)", c)
	}
}

func TestSurfaceCollisionCheck(t *testing.T) {
	screen := newSimScreen(t)
	s := NewSurface(screen, core.Bounds{Height: 10, Width: 10})
	s.MoveCursor(5, 5)

	if meteors.IsHit(s, '*') {
		t.Fatal("IsHit() on an empty cell")
	}

	m := meteors.Meteor{Pos: core.Point{Row: 5, Col: 4}, Shape: meteors.ShapeDot, Path: meteors.PathRight}
	m.Advance()
	m.Draw(s, '*')
	if !meteors.IsHit(s, '*') {
		t.Error("IsHit() = false with a meteor drawn under the cursor")
	}
}

func TestPaint(t *testing.T) {
	screen := newSimScreen(t)

	src := core.NewScreen(6, 3)
	src.DrawFrame()
	Paint(screen, src, 2, 1)

	if r, _, _, _ := screen.GetContent(2, 1); r != ',' {
		t.Errorf("top-left corner = %q, expected ','", r)
	}
	if r, _, _, _ := screen.GetContent(7, 3); r != '\'' {
		t.Errorf("bottom-right corner = %q, expected '\\''", r)
	}
}
