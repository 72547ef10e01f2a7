package curses

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/games/meteors"
	"github.com/vovakirdan/tui-meteors/internal/logging"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

// Config describes one game on the tcell backend.
type Config struct {
	GameID  string // meteors.GameID or meteors.ClassicGameID
	Seed    int64  // 0 picks a time-based seed
	Meteors config.MeteorsConfig
	Logger  *log.Logger
	Store   *storage.Store // optional; receives the score of a finished game
}

// Runner drives a Session from blocking terminal input.
// Each key press or resize is one tick; nothing moves while waiting.
type Runner struct {
	screen  tcell.Screen
	cfg     Config
	logger  *log.Logger
	surface *Surface
	session *meteors.Session
	width   int
	height  int
}

// NewRunner prepares a game on an initialized screen.
func NewRunner(screen tcell.Screen, cfg Config) (*Runner, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := &Runner{screen: screen, cfg: cfg, logger: logger}
	r.width, r.height = screen.Size()

	b, err := r.boardBounds()
	if err != nil {
		return nil, fmt.Errorf("curses: screen %dx%d too small: %w", r.width, r.height, err)
	}

	screen.Clear()
	r.surface = NewSurface(screen, b)

	start := b.Center()
	if r.classic() {
		if err := meteors.CheckClassicGlyph(cfg.Meteors.MeteorGlyph()); err != nil {
			return nil, err
		}
		frame := core.NewScreen(b.Width, b.Height)
		frame.DrawFrame()
		frame.DrawTextColor(0, 0, meteors.Instructions, core.ColorHUD)
		Paint(screen, frame, 0, 0)
		start = b.Clip(meteors.ClassicStart)
	}
	r.surface.MoveCursor(start.Row, start.Col)

	opts := meteors.Options{
		InitialMeteors: cfg.Meteors.Meteors.Initial,
		Glyph:          cfg.Meteors.MeteorGlyph(),
	}
	session, err := meteors.NewSession(r.surface, opts, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	r.session = session

	logger.Info("game started", "game", cfg.GameID, "seed", cfg.Seed, "board", fmt.Sprintf("%dx%d", b.Height, b.Width))
	return r, nil
}

func (r *Runner) classic() bool {
	return r.cfg.GameID == meteors.ClassicGameID
}

// boardBounds returns the board size for the current terminal.
func (r *Runner) boardBounds() (core.Bounds, error) {
	switch {
	case r.classic():
		return meteors.ClassicBounds, nil
	case !r.cfg.Meteors.Board.IsFit():
		return core.NewBounds(r.cfg.Meteors.Board.Height, r.cfg.Meteors.Board.Width)
	default:
		return core.NewBounds(r.height-1, r.width)
	}
}

// Run processes events until the game ends, the screen is finalized,
// or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (core.GameState, error) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		r.drawStatus()
		r.screen.Show()

		tev := r.screen.PollEvent()
		if tev == nil {
			// Screen finalized
			return r.session.State(), nil
		}
		if _, ok := tev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return r.session.State(), ctx.Err()
		}

		ev, ok := r.translate(tev)
		if !ok {
			continue
		}

		state := r.session.Advance(ev)
		r.logger.Debug("tick", "event", ev.Kind, "score", state.Score, "meteors", r.session.Field().Len())
		if state.GameOver {
			r.logger.Info("game over", "game", r.cfg.GameID, "score", state.Score, "reason", state.Reason)
			r.saveScore(state)
			r.drawStatus()
			r.screen.Show()
			return state, nil
		}
	}
}

// translate turns a terminal event into a game event.
// ok is false for events that are not ticks.
func (r *Runner) translate(ev tcell.Event) (core.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return EventFor(KeyName(ev), r.cfg.Meteors.Keys), true

	case *tcell.EventResize:
		w, h := ev.Size()
		if w == r.width && h == r.height {
			return core.Event{}, false
		}
		r.width, r.height = w, h
		r.screen.Sync()
		if !r.classic() && r.cfg.Meteors.Board.IsFit() {
			if b, err := r.boardBounds(); err == nil {
				r.reframe(b)
			}
		}
		return core.NewResizeEvent(w, h), true
	}
	return core.Event{}, false
}

// reframe switches the surface to b. Cells that join or leave the board are
// blanked, which also wipes the old status line when the board grows over it.
func (r *Runner) reframe(b core.Bounds) {
	old := r.surface.Bounds()
	for row := range max(old.Height+1, b.Height) {
		for col := range max(old.Width, b.Width) {
			p := core.Point{Row: row, Col: col}
			if old.Contains(p) != b.Contains(p) || row == old.Height {
				r.screen.SetContent(col, row, core.Blank, nil, tcell.StyleDefault)
			}
		}
	}
	r.surface.SetBounds(b)
}

// saveScore records a finished game; games cut short by a signal are not saved.
func (r *Runner) saveScore(state core.GameState) {
	if r.cfg.Store == nil || !state.GameOver || state.Score <= 0 {
		return
	}
	if _, err := r.cfg.Store.SaveScore(r.cfg.GameID, state.Score, state.Reason.String()); err != nil {
		r.logger.Error("cannot save score", "game", r.cfg.GameID, "error", err)
	}
}

// drawStatus writes the score line below the board.
func (r *Runner) drawStatus() {
	state := r.session.State()
	y := r.surface.Bounds().Height

	for x := range r.width {
		r.screen.SetContent(x, y, core.Blank, nil, tcell.StyleDefault)
	}

	color := core.ColorHUD
	text := fmt.Sprintf(" Score: %d  Meteors: %d ", state.Score, r.session.Field().Len())
	if state.Reason == core.ReasonHit {
		color = core.ColorAlert
		text = fmt.Sprintf(" Hit! Final score: %d ", state.Score)
	}
	drawText(r.screen, 0, y, text, color)
}

// State returns the current game state.
func (r *Runner) State() core.GameState {
	return r.session.State()
}

// Play opens the terminal, runs one game and restores the terminal.
func Play(ctx context.Context, cfg Config) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("curses: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("curses: cannot init screen: %w", err)
	}
	defer screen.Fini()

	r, err := NewRunner(screen, cfg)
	if err != nil {
		return core.GameState{}, err
	}

	return r.Run(ctx)
}
