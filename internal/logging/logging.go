// Package logging builds the slog logger used across the CLI. Output goes to
// stderr so command results on stdout stay scriptable.
package logging

import (
	"io"
	"log/slog"
)

// New constructs a text-handler logger on w. Verbosity 0 logs warnings and
// above; anything higher enables debug logging (cache hits, page fetches).
func New(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	if verbosity > 0 {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
