package meteors

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/registry"
)

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, ClassicGameID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New()
	if err := g1.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	g2 := New()
	if err := g2.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	kinds := []core.EventKind{core.EventMoveLeft, core.EventMoveUp, core.EventOther, core.EventMoveRight}
	for i := 0; i < 100; i++ {
		ev := core.NewEvent(kinds[i%len(kinds)])
		g1.Step(ev)
		g2.Step(ev)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetFitsTerminal(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := g.Snapshot()
	if snap.Bounds != (core.Bounds{Height: 23, Width: 80}) {
		t.Errorf("Bounds = %+v, expected 23x80 (one status line)", snap.Bounds)
	}
	if snap.Cursor != (core.Point{Row: 11, Col: 40}) {
		t.Errorf("Cursor = %+v, expected center (11,40)", snap.Cursor)
	}
	if len(snap.Meteors) != DefaultInitialMeteors {
		t.Errorf("%d meteors, expected %d", len(snap.Meteors), DefaultInitialMeteors)
	}
	if snap.Score != 0 || snap.Reason != "running" {
		t.Errorf("fresh game = %+v", snap)
	}
}

func TestResetRejectsTinyScreen(t *testing.T) {
	g := New()
	err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 1})
	if !errors.Is(err, core.ErrInvalidBounds) {
		t.Fatalf("Reset() error = %v, expected ErrInvalidBounds", err)
	}

	// A game that failed to reset is inert
	if res := g.Step(core.NewEvent(core.EventMoveUp)); res.State.GameOver || res.State.Score != 0 {
		t.Errorf("Step() on unreset game = %+v", res.State)
	}
	dst := core.NewScreen(40, 3)
	g.Render(dst)
	if !strings.Contains(dst.String(), "too small") {
		t.Errorf("Render() should explain the failure, got %q", dst.String())
	}
}

func TestClassicBoard(t *testing.T) {
	g := NewClassic()
	if err := g.Reset(core.RuntimeConfig{Seed: 9, ScreenW: 120, ScreenH: 50}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	snap := g.Snapshot()
	if snap.Bounds != ClassicBounds {
		t.Errorf("Bounds = %+v, expected %+v", snap.Bounds, ClassicBounds)
	}
	if snap.Cursor != ClassicStart {
		t.Errorf("Cursor = %+v, expected %+v", snap.Cursor, ClassicStart)
	}

	dst := core.NewScreen(120, 50)
	g.Render(dst)
	if !strings.HasPrefix(dst.Row(0), Instructions) {
		t.Errorf("row 0 = %q, expected instructions", dst.Row(0))
	}
	if dst.Get(0, 39) != '\'' || dst.Get(84, 39) != '\'' {
		t.Errorf("bottom frame corners missing, row 39 = %q", dst.Row(39))
	}

	// Classic boards ignore terminal resizes
	g.Step(core.NewResizeEvent(60, 20))
	if got := g.Snapshot().Bounds; got != ClassicBounds {
		t.Errorf("classic board resized to %+v", got)
	}
}

func TestResizeFollowsTerminal(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	g.Step(core.NewResizeEvent(100, 30))
	if got := g.Snapshot().Bounds; got != (core.Bounds{Height: 29, Width: 100}) {
		t.Errorf("Bounds after resize = %+v, expected 29x100", got)
	}

	// Degenerate sizes keep the previous board
	g.Step(core.NewResizeEvent(100, 1))
	if got := g.Snapshot().Bounds; got.Height != 29 {
		t.Errorf("Bounds after degenerate resize = %+v, expected to stay 29x100", got)
	}
}

func TestRenderShowsCursorAndStatus(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 4, ScreenW: 40, ScreenH: 12}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	dst := core.NewScreen(40, 12)
	g.Render(dst)

	c := g.Snapshot().Cursor
	cell := dst.GetCell(c.Col, c.Row)
	if cell.Rune != '@' || cell.Color != core.ColorCursor {
		t.Errorf("cursor cell = %+v, expected '@' in cursor color", cell)
	}
	if !strings.Contains(dst.Row(11), "Score: 0") {
		t.Errorf("status line = %q, expected score", dst.Row(11))
	}
	if !strings.Contains(dst.Row(11), "hjkl move") {
		t.Errorf("status line = %q, expected movement hint", dst.Row(11))
	}
}

func TestQuitEndsGame(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	res := g.Step(core.NewEvent(core.EventQuit))
	if !res.State.GameOver || res.State.Reason != core.ReasonQuit {
		t.Errorf("Step(Quit) = %+v, expected quit", res.State)
	}
	if g.State() != res.State {
		t.Errorf("State() = %+v, expected %+v", g.State(), res.State)
	}
}

func TestCheckClassicGlyph(t *testing.T) {
	tests := []struct {
		glyph    rune
		reserved bool
	}{
		{'*', false},
		{'#', false},
		{'|', true},
		{'-', true},
		{',', true},
		{'\'', true},
		{'v', true}, // in the instruction line
		{'z', false},
	}

	for _, tc := range tests {
		err := CheckClassicGlyph(tc.glyph)
		if got := errors.Is(err, ErrReservedGlyph); got != tc.reserved {
			t.Errorf("CheckClassicGlyph(%q) = %v, expected reserved=%v", tc.glyph, err, tc.reserved)
		}
	}
}

func TestClassicRejectsFrameGlyph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meteors.yaml")
	if err := os.WriteFile(path, []byte("meteors:\n  glyph: \"-\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 120, ScreenH: 50}
	if err := NewClassic().Reset(cfg); !errors.Is(err, ErrReservedGlyph) {
		t.Errorf("classic Reset() error = %v, expected ErrReservedGlyph", err)
	}
	// The fitted board draws no frame, so the glyph is fine there
	if err := New().Reset(cfg); err != nil {
		t.Errorf("fit Reset() failed: %v", err)
	}
}

func TestDescriptions(t *testing.T) {
	for _, id := range []string{GameID, ClassicGameID} {
		info, ok := registry.Lookup(id)
		if !ok || info.Description == "" {
			t.Errorf("registry.Lookup(%q) = %+v, expected a description", id, info)
		}
	}
}
