// Package logger
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"speccle/internal/config"
)

// Logger is the structured key-value logger passed into every collector.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// New builds a Logger from the loaded config. Output goes to stderr so
// stdout stays clean for plain-mode rendering.
func New(cfg *config.Config) Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
