// Package logging configures the process-wide slog default. Logs always go
// to stderr: stdout belongs to the alert stream and the road/table output.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the default slog logger. When alertsOnStdout is
// true the stdout sink is emitting NDJSON alerts, so logs use JSONHandler
// to keep both streams machine readable together; otherwise TextHandler
// for human readability.
func Init(alertsOnStdout bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if alertsOnStdout {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// Component returns the default logger tagged with a component attribute,
// so log lines from the watch loop, sinks, and providers stay tellable
// apart.
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
