package config

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// OutputConfig holds settings related to CLI output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// MaxLineLength is the wrap width for move lists
	MaxLineLength uint

	// Prompt is printed before each command in interactive mode
	Prompt string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 10 {
		return fmt.Errorf("max line length (%d) below 10: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
