package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// MaxPerftDepth bounds perft requests; deeper trees take minutes.
const MaxPerftDepth = 6

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Workers is the number of goroutines for divide
	Workers int

	// MaxDepth rejects deeper requests
	MaxDepth int

	// CPUProfileDir enables CPU profiling into the directory when set
	CPUProfileDir string
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:  runtime.NumCPU(),
		MaxDepth: 5,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be positive: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxDepth < 1 || p.MaxDepth > MaxPerftDepth {
		return fmt.Errorf("perft max depth (%d) outside 1..%d: %w", p.MaxDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
