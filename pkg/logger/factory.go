package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a text logger writing to w at the given level,
// decorated with the given context extractors.
func New(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error")
// into a slog.Level. The second result is false for unknown names.
func ParseLevel(name string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
