package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup creates a configured *slog.Logger, sets it as the default, and returns it.
// The level parameter accepts: "debug", "info", "warn", "error" or "off"
// (case-insensitive). "off" discards everything, which keeps scripted
// invocations quiet on stderr. Defaults to warn if the level string is
// unrecognized, so normal interactive use only surfaces problems.
func Setup(level string) *slog.Logger {
	out := io.Writer(os.Stderr)
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	case "off", "silent":
		out = io.Discard
	default:
		lvl = slog.LevelWarn
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
