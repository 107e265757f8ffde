// Package logging configures the logger behind the --debug flag.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text-format logger writing to w. Without debug only
// warnings and errors are emitted, so normal runs keep stderr clean for
// error messages.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
