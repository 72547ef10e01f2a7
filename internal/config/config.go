// Package config provides YAML-based game configuration loading and
// environment overrides for the meteors game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// MeteorsConfig contains all configuration for the Meteors game.
type MeteorsConfig struct {
	Meteors MeteorsSpawn `yaml:"meteors"`
	Cursor  CursorConfig `yaml:"cursor"`
	Board   BoardConfig  `yaml:"board"`
	Keys    KeysConfig   `yaml:"keys"`
}

// MeteorsSpawn defines the meteor population and look.
type MeteorsSpawn struct {
	Initial int    `yaml:"initial"`
	Glyph   string `yaml:"glyph"`
}

// CursorConfig defines how the player cursor is shown.
type CursorConfig struct {
	Glyph string `yaml:"glyph"`
}

// BoardConfig fixes the playfield size. Zero values mean "fit the terminal".
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// IsFit returns true if the board follows the terminal size.
func (b BoardConfig) IsFit() bool {
	return b.Height == 0 && b.Width == 0
}

// KeysConfig lists key names (Bubble Tea notation) for each action.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// MeteorGlyph returns the meteor glyph as a rune.
func (c MeteorsConfig) MeteorGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Meteors.Glyph)
	return r
}

// CursorGlyph returns the cursor glyph as a rune.
func (c MeteorsConfig) CursorGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Cursor.Glyph)
	return r
}

// Validate checks the configuration for values the game cannot run with.
func (c MeteorsConfig) Validate() error {
	if c.Meteors.Initial < 0 {
		return fmt.Errorf("%w: meteors.initial must be >= 0, got %d", ErrInvalid, c.Meteors.Initial)
	}
	if utf8.RuneCountInString(c.Meteors.Glyph) != 1 || c.Meteors.Glyph == " " {
		return fmt.Errorf("%w: meteors.glyph must be one visible character, got %q", ErrInvalid, c.Meteors.Glyph)
	}
	if utf8.RuneCountInString(c.Cursor.Glyph) != 1 {
		return fmt.Errorf("%w: cursor.glyph must be one character, got %q", ErrInvalid, c.Cursor.Glyph)
	}
	if c.Cursor.Glyph == c.Meteors.Glyph {
		return fmt.Errorf("%w: cursor.glyph must differ from meteors.glyph", ErrInvalid)
	}
	if !c.Board.IsFit() && (c.Board.Height <= 0 || c.Board.Width <= 0) {
		return fmt.Errorf("%w: board must be 0x0 or positive, got %dx%d", ErrInvalid, c.Board.Height, c.Board.Width)
	}
	for name, keys := range map[string][]string{
		"up":    c.Keys.Up,
		"down":  c.Keys.Down,
		"left":  c.Keys.Left,
		"right": c.Keys.Right,
		"quit":  c.Keys.Quit,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s must list at least one key", ErrInvalid, name)
		}
	}
	return nil
}
