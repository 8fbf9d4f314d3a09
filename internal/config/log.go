package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error
	Level string

	// JSON writes raw JSON lines instead of console output
	JSON bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}

// Validate checks that the level name parses.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}
