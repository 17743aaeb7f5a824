package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON slog logger writing to w at the provided level. An
// invalid level string falls back to info.
func New(w io.Writer, level string) *slog.Logger {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.Set(slog.LevelInfo)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Default returns the stdout logger used by the server process.
func Default(level string) *slog.Logger {
	return New(os.Stdout, level)
}

// Discard returns a logger that drops all output. Useful for tests.
func Discard() *slog.Logger {
	return New(io.Discard, "error")
}
