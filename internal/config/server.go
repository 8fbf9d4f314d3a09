package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// ServiceName is reported by the health endpoint
	ServiceName string

	// ReadTimeout and WriteTimeout bound a single request
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		ServiceName:     "chess-engine",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("negative timeout: %w", errors.ErrInvalidConfig)
	}
	return nil
}
