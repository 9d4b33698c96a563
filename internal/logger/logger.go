// Package logger configures the process-wide slog logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs a slog handler on stderr as the default logger and returns
// the root logger. level accepts debug/info/warn/error (default info) and
// format accepts text/json (default text).
func Init(level, format string) *slog.Logger {
	handler := newHandler(os.Stderr, level, format)
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func newHandler(w *os.File, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
