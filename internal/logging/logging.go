package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New initializes a new slog logger and sets it as the default.
// LOG_FORMAT selects "text" (default, with source locations) or "json".
// LOG_LEVEL selects debug (default), info, warn or error.
func New() *slog.Logger {
	logger := NewWithWriter(os.Stdout, os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter builds a logger without touching the process default.
func NewWithWriter(w io.Writer, format, level string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLevel(level),
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     parseLevel(level),
			AddSource: true,
		})
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
