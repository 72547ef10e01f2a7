package meteors

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/registry"
)

// Registered game IDs.
const (
	GameID        = "meteors"
	ClassicGameID = "meteors_classic"
)

// Variant selects how the board is sized.
type Variant int

const (
	VariantFit     Variant = iota // Board follows the terminal
	VariantClassic                // Fixed framed board
)

// ClassicBounds is the board size of the classic variant.
var ClassicBounds = core.Bounds{Height: 40, Width: 85}

// ClassicStart is where the cursor starts on the classic board.
var ClassicStart = core.Point{Row: 19, Col: 42}

// Instructions is printed on the top border of the classic board.
const Instructions = "vi keys to move, 'q' to quit, new meteor with every move"

// classicFrameGlyphs are the characters core.Screen.DrawFrame puts on the board.
const classicFrameGlyphs = "|-,'"

// ErrReservedGlyph is returned when the meteor glyph also appears in the
// classic frame or its instruction line, where it would read as a hit.
var ErrReservedGlyph = errors.New("meteors: glyph is drawn by the classic frame")

// CheckClassicGlyph rejects meteor glyphs the classic board already shows.
func CheckClassicGlyph(glyph rune) error {
	if strings.ContainsRune(classicFrameGlyphs+Instructions, glyph) {
		return fmt.Errorf("%w: %q", ErrReservedGlyph, glyph)
	}
	return nil
}

// hudHeight is the number of status lines below a fitted board.
const hudHeight = 1

var configPath string

// SetConfigPath sets the YAML config used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's registry.Game interface.
// The board is an in-memory surface that persists between ticks; the
// simulation draws into it incrementally and Render copies it out.
type Game struct {
	variant Variant
	cfg     config.MeteorsConfig
	board   *core.Screen
	session *Session
}

// New creates a game whose board fits the terminal.
func New() *Game {
	return &Game{variant: VariantFit}
}

// NewClassic creates a game on the fixed 40x85 framed board.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return ClassicGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Meteors (Classic)"
	}
	return "Meteors"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "fixed 40x85 framed board with instructions"
	}
	return "board fits the terminal and follows resizes"
}

// Reset loads the configuration and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.session = nil
	mcfg, err := config.LoadMeteors(configPath)
	if err != nil {
		return fmt.Errorf("meteors: %w", err)
	}
	g.cfg = mcfg
	if g.variant == VariantClassic {
		if err := CheckClassicGlyph(mcfg.MeteorGlyph()); err != nil {
			return err
		}
	}

	b, err := g.boardBounds(cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return fmt.Errorf("meteors: screen %dx%d too small: %w", cfg.ScreenW, cfg.ScreenH, err)
	}

	g.board = core.NewScreen(b.Width, b.Height)
	start := b.Center()
	if g.variant == VariantClassic {
		g.board.DrawFrame()
		g.board.DrawTextColor(0, 0, Instructions, core.ColorHUD)
		start = b.Clip(ClassicStart)
	}
	g.board.MoveCursor(start.Row, start.Col)

	opts := Options{
		InitialMeteors: mcfg.Meteors.Initial,
		Glyph:          mcfg.MeteorGlyph(),
	}
	session, err := NewSession(g.board, opts, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	g.session = session
	return nil
}

// boardBounds returns the board size for a terminal of w x h cells.
func (g *Game) boardBounds(w, h int) (core.Bounds, error) {
	switch {
	case g.variant == VariantClassic:
		return ClassicBounds, nil
	case !g.cfg.Board.IsFit():
		return core.NewBounds(g.cfg.Board.Height, g.cfg.Board.Width)
	default:
		return core.NewBounds(h-hudHeight, w)
	}
}

// resizable reports whether the board follows terminal resizes.
func (g *Game) resizable() bool {
	return g.variant == VariantFit && g.cfg.Board.IsFit()
}

// Step advances the game by one tick.
func (g *Game) Step(ev core.Event) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	if ev.Kind == core.EventResize && g.resizable() {
		// A terminal too small for any board keeps the previous one
		if b, err := g.boardBounds(ev.Size.Width, ev.Size.Height); err == nil {
			g.board.Resize(b.Width, b.Height)
		}
	}

	return core.StepResult{State: g.session.Advance(ev)}
}

// Render draws the board, the cursor and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	dst.Blit(g.board, 0, 0)

	state := g.session.State()
	c := g.board.Cursor()
	if state.Reason == core.ReasonHit {
		dst.SetColor(c.Col, c.Row, g.session.Glyph(), core.ColorAlert)
	} else {
		dst.SetColor(c.Col, c.Row, g.cfg.CursorGlyph(), core.ColorCursor)
	}

	hudY := min(g.board.Height(), dst.Height()-1)
	status := fmt.Sprintf(" Score: %d  Meteors: %d  %s move  %s quit ",
		state.Score, g.session.Field().Len(), g.moveHint(), firstKey(g.cfg.Keys.Quit))
	dst.DrawTextColor(0, hudY, status, core.ColorHUD)

	if state.Reason == core.ReasonHit {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  Q quit", state.Score))
	}
}

// moveHint returns the primary movement keys, e.g. "hjkl".
func (g *Game) moveHint() string {
	k := g.cfg.Keys
	return firstKey(k.Left) + firstKey(k.Down) + firstKey(k.Up) + firstKey(k.Right)
}

func firstKey(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	return keys[0]
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorAlert)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.State()
}
