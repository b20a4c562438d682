package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output on stdout keeps
// local runs readable; the level comes from the caller so config stays in one
// place.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
