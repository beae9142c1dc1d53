package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated logger; it never touches slog.Default().
// Unknown levels fall back to warn so a normal run stays quiet.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			level = slog.LevelWarn
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
