package utils

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// ParseLevel maps a level name (debug, info, warn, error) onto slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Wrapf(ErrInvalidConfig, "unknown log level %q", name)
	}
}

// NewLogger builds a structured logger writing JSON or text to out
func NewLogger(level, format string, out io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "", "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown log format %q", format)
	}
	return slog.New(handler), nil
}
