// Package logging builds the charmbracelet/log loggers used by the CLI,
// the terminal frontends and the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-meteors/internal/config"
)

// Options configures a logger.
type Options struct {
	// Path is the log file. Empty means Fallback.
	Path string

	// Level is a charmbracelet/log level name ("debug", "info", ...).
	Level string

	// Prefix is shown before every message.
	Prefix string

	// Fallback receives log output when Path is empty.
	// Nil discards it, which keeps full-screen frontends clean.
	Fallback io.Writer
}

// New creates a logger. The returned close function releases the log file
// and is safe to call when no file was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }

	switch {
	case opts.Path != "":
		path, err := config.ExpandHome(opts.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		w = f
		closer = f.Close
	case opts.Fallback != nil:
		w = opts.Fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
