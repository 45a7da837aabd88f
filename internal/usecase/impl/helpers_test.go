package impl

import (
	"io"
	"log/slog"
)

// newTestLogger returns a logger whose output is discarded.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
