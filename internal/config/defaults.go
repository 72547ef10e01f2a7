package config

import (
	_ "embed"
)

//go:embed defaults/meteors.yaml
var defaultMeteorsYAML []byte

// DefaultMeteorsConfig returns the default Meteors configuration.
func DefaultMeteorsConfig() MeteorsConfig {
	return MeteorsConfig{
		Meteors: MeteorsSpawn{
			Initial: 10,
			Glyph:   "*",
		},
		Cursor: CursorConfig{
			Glyph: "@",
		},
		Board: BoardConfig{}, // Fit the terminal
		Keys: KeysConfig{
			Up:    []string{"k", "up"},
			Down:  []string{"j", "down"},
			Left:  []string{"h", "left"},
			Right: []string{"l", "right"},
			Quit:  []string{"q", "ctrl+c"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "meteors", "meteors_classic":
		return defaultMeteorsYAML
	default:
		return nil
	}
}
