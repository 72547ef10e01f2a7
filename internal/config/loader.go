package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and logs.
const AppDir = ".meteors"

// LoadMeteors loads Meteors configuration.
// Search order: customPath -> ~/.meteors/configs/meteors.yaml -> ./configs/meteors.yaml -> embedded default
// Files are layered over the defaults, so they only need the keys they change.
func LoadMeteors(customPath string) (MeteorsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MeteorsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMeteors(data)
		if err != nil {
			return MeteorsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("meteors.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMeteors(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/meteors.yaml"); err == nil {
		if cfg, err := parseMeteors(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMeteors(defaultMeteorsYAML)
	if err != nil {
		return DefaultMeteorsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseMeteors decodes YAML over the hardcoded defaults and validates the result.
func parseMeteors(data []byte) (MeteorsConfig, error) {
	cfg := DefaultMeteorsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MeteorsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MeteorsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
