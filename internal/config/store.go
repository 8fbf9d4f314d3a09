package config

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// StoreConfig holds settings for game persistence.
type StoreConfig struct {
	// Dir is the badger data directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps all data in memory
	InMemory bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		InMemory: true,
	}
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if !s.InMemory && s.Dir == "" {
		return fmt.Errorf("store directory required unless in-memory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
