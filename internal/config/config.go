// Package config provides runtime configuration for the chess engine.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Server *ServerConfig
	Store  *StoreConfig
	Log    *LogConfig
	Perft  *PerftConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:     NewServerConfig(),
		Store:      NewStoreConfig(),
		Log:        NewLogConfig(),
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for command output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-config and returns the first problem found.
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{c.Server, c.Store, c.Log, c.Perft, c.Output}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
