// Package logging configures structured logging with tint.
//
// The terminal is owned by the UI, so records go to a file instead of
// stderr. The level comes from the config value, then LOG_LEVEL, then INFO.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup opens path for appending and installs a tint handler as the
// default slog logger. The returned closer flushes the file.
func Setup(path, level string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(New(f, ParseLevel(level)))
	return f, nil
}

// New returns a tint logger writing to w without colour codes.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}))
}

// ParseLevel maps debug, warn and error to their slog level. Anything else,
// including an empty string after consulting LOG_LEVEL, is INFO.
func ParseLevel(s string) slog.Level {
	if strings.TrimSpace(s) == "" {
		s = os.Getenv("LOG_LEVEL")
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
