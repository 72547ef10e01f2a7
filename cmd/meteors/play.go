package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/games/meteors"
	"github.com/vovakirdan/tui-meteors/internal/platform/curses"
	"github.com/vovakirdan/tui-meteors/internal/platform/tui"
	"github.com/vovakirdan/tui-meteors/internal/registry"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

// Frontends for the play command.
const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: meteors).

Variants:
  meteors          - The board fills the terminal and follows resizes
  meteors_classic  - Fixed 40x85 framed board

Controls (configurable in the YAML config):
  h/j/k/l, arrows  - Move (every key press is one step)
  R                - Restart (after being hit)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Backends:
  tea    - Bubble Tea frontend with colors and a game over screen
  tcell  - Draws straight into the terminal like a curses program

Examples:
  meteors play
  meteors play meteors_classic
  meteors play --backend tcell --seed 42
  meteors play --config ./my-meteors.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Frontend: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := meteors.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'meteors list' to see them)", gameID)
	}
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}

	mcfg, err := config.LoadMeteors(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("meteors", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	var state core.GameState
	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		state, err = curses.Play(ctx, curses.Config{
			GameID:  gameID,
			Seed:    flagSeed,
			Meteors: mcfg,
			Logger:  logger,
			Store:   store,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

	default:
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		keys := tui.NewGameKeyMap(mcfg.Keys)
		res, err := tui.Run(game, terminalConfig(), tui.Options{Store: store, Logger: logger, Keys: &keys})
		if err != nil {
			return err
		}
		state = core.GameState{Score: res.Score, GameOver: res.Reason != core.ReasonNone, Reason: res.Reason}
	}

	fmt.Printf("Final score: %d\n", state.Score)
	return nil
}
