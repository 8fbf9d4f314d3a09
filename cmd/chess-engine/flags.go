// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/output"
)

var (
	// Mode selection
	serve     = flag.Bool("serve", false, "Serve the HTTP API instead of reading commands from stdin")
	perftOnly = flag.Int("perft", 0, "Print perft divide to the given depth and exit")
	startText = flag.String("fen", "", "Starting position for the session or perft (\"startpos\" or the initial FEN)")

	// HTTP server
	addr        = flag.String("addr", ":8080", "HTTP listen address")
	serviceName = flag.String("service", "chess-engine", "Service name reported by /health")

	// Storage
	storeDir = flag.String("store", "", "Game store directory (default: in memory)")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	jsonLogs = flag.Bool("jsonlogs", false, "Write logs as JSON lines")

	// Perft
	perftWorkers  = flag.Int("workers", 0, "Perft divide workers (0 = number of CPUs)")
	maxPerftDepth = flag.Int("maxdepth", 5, "Deepest accepted perft request")
	cpuProfile    = flag.String("cpuprofile", "", "Write a CPU profile into this directory")

	// Output
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	outputFormat = flag.String("format", "", "Output format: text, json (overrides -J)")
	lineLength   = flag.Int("w", 80, "Maximum line length for move lists")
	prompt       = flag.String("prompt", "", "Prompt printed before each command")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyServerFlags(cfg)
	applyStoreFlags(cfg)
	applyLogFlags(cfg)
	applyPerftFlags(cfg)
	return applyOutputFlags(cfg)
}

// applyServerFlags configures the HTTP server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.ServiceName = *serviceName
}

// applyStoreFlags selects on-disk or in-memory storage.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *storeDir
	cfg.Store.InMemory = *storeDir == ""
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = *logLevel
	cfg.Log.JSON = *jsonLogs
}

// applyPerftFlags configures perft. A zero worker count keeps the default.
func applyPerftFlags(cfg *config.Config) {
	if *perftWorkers > 0 {
		cfg.Perft.Workers = *perftWorkers
	}
	cfg.Perft.MaxDepth = *maxPerftDepth
	cfg.Perft.CPUProfileDir = *cpuProfile
}

// applyOutputFlags configures output formatting. -format wins over -J.
func applyOutputFlags(cfg *config.Config) error {
	cfg.Output.JSONFormat = *jsonOutput
	if *outputFormat != "" {
		format, err := output.ParseFormat(*outputFormat)
		if err != nil {
			return err
		}
		cfg.Output.JSONFormat = format == output.FormatJSON
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.Prompt = *prompt
	return nil
}
