package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-wide runtime tunables read from TFDRIVER_*
// environment variables. They cover knobs that should not need code
// changes, not per-command behavior.
type Settings struct {
	// MaxLineSize is the scanner buffer limit for one output line in
	// stream mode.
	MaxLineSize int `env:"TFDRIVER_MAX_LINE_SIZE" envDefault:"1048576"`

	// Echo makes every command print its command line before running,
	// unless the command sets echo explicitly.
	Echo bool `env:"TFDRIVER_ECHO" envDefault:"false"`
}

// LoadSettings parses settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings

	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse driver settings: %w", err)
	}

	return s, nil
}
