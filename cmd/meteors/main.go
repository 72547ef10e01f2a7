// meteors is a terminal game: dodge the meteors that fly across the screen.
// Every key press moves the world one step; the score counts the steps survived.
//
// Usage:
//
//	meteors list                 - List game variants
//	meteors play [variant]       - Play a variant (default: meteors)
//	meteors menu                 - Pick variants interactively
//	meteors serve                - Start SSH server for remote play
//	meteors scores <variant>     - Show high scores for a variant
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.meteors/scores.db)
//	--config <path>     - Use a custom YAML config
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
//
// Every flag default can also be set from the environment (METEORS_SEED,
// METEORS_DB, METEORS_CONFIG, METEORS_LOG_FILE, METEORS_LOG_LEVEL).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/games/meteors"
	"github.com/vovakirdan/tui-meteors/internal/logging"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	registerFlags(env)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meteors",
	Short: "Meteors - dodge falling rocks in your terminal",
	Long: `Meteors is a turn-based terminal game. Each key press moves your
cursor and advances every meteor one step; a new meteor appears every move.
Get hit and the game is over. Your score is the number of moves survived.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  meteors play
  meteors play meteors_classic --backend tcell
  meteors menu
  meteors serve --ssh :2222
  meteors scores meteors`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		meteors.SetConfigPath(flagConfig)
	},
}

// registerFlags adds the global flags with defaults taken from the environment.
func registerFlags(env config.Env) {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", env.SSHAddr, "SSH server address (host:port)")
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogger creates the command's logger. Without --log-file, output goes
// to fallback; full-screen commands pass nil so the display stays clean.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Path:     flagLogFile,
		Level:    flagLogLevel,
		Prefix:   prefix,
		Fallback: fallback,
	})
}

// terminalConfig returns the runtime config for the current terminal,
// falling back to 80x24 when stdout is not a terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
