/*
Package settings loads mailmerge's own settings from the environment.

Variables may also be put in a .env file in the working directory; variables
already set in the environment take precedence over the file.
*/
package settings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Settings holds the tool settings
type Settings struct {
	// Config is the default campaign config path
	Config string `env:"MAILMERGE_CONFIG" envDefault:"mailmerge.ini"`

	// Template is the default campaign template path
	Template string `env:"MAILMERGE_TEMPLATE" envDefault:"mailmerge.tmpl"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"MAILMERGE_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the given .env files (".env" when none is given) and parses
// the environment into Settings. Missing .env files are not an error.
func Load(files ...string) (*Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// Level returns the log level for LogLevel, warn if it is not recognized
func (s *Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
