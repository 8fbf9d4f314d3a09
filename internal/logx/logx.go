// Package logx builds the zerolog logger shared by the CLI, store and HTTP layer.
package logx

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-core-go/internal/config"
)

// NewLogger returns a logger writing to w. Output is console formatted with
// RFC3339 timestamps unless cfg.JSON is set. An unparsable level falls back
// to info.
func NewLogger(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:          w,
			TimeFormat:   time.RFC3339,
			NoColor:      true,
			FormatCaller: formatCaller,
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Caller().Logger()
}

// formatCaller trims a caller path to its file name and pads it for alignment.
func formatCaller(i interface{}) string {
	file, ok := i.(string)
	if !ok || file == "" {
		return ""
	}
	for j := len(file) - 1; j > 0; j-- {
		if file[j] == '/' {
			file = file[j+1:]
			break
		}
	}
	return fmt.Sprintf("%-20s", file)
}

// Nop returns a disabled logger for callers that do not want output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
