package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that can be supplied through the environment.
// They become the defaults of the matching CLI flags.
type Env struct {
	DBPath     string `env:"METEORS_DB" envDefault:"~/.meteors/scores.db"`
	ConfigPath string `env:"METEORS_CONFIG"`
	Seed       int64  `env:"METEORS_SEED" envDefault:"0"`
	LogFile    string `env:"METEORS_LOG_FILE"`
	LogLevel   string `env:"METEORS_LOG_LEVEL" envDefault:"info"`
	SSHAddr    string `env:"METEORS_SSH_ADDR" envDefault:":23234"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
