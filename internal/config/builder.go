package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithTimeouts sets the HTTP read and write timeouts.
func (b *ConfigBuilder) WithTimeouts(read, write time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = read
	b.cfg.Server.WriteTimeout = write
	return b
}

// WithStoreDir persists games under dir.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	b.cfg.Store.InMemory = dir == ""
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithJSONLogs enables JSON log lines.
func (b *ConfigBuilder) WithJSONLogs(enabled bool) *ConfigBuilder {
	b.cfg.Log.JSON = enabled
	return b
}

// WithPerftWorkers sets the divide worker count.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithMaxPerftDepth sets the deepest accepted perft request.
func (b *ConfigBuilder) WithMaxPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.MaxDepth = depth
	return b
}

// WithCPUProfile enables CPU profiling into dir.
func (b *ConfigBuilder) WithCPUProfile(dir string) *ConfigBuilder {
	b.cfg.Perft.CPUProfileDir = dir
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithPrompt sets the interactive prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Output.Prompt = prompt
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
