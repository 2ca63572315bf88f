// Package logging configures colored structured logging with tint.
//
// Every record carries a session attribute so that the edits of one run of
// the calculator can be told apart in a shared log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// SessionKey is the attribute name holding the per-run id
const SessionKey = "session"

// Setup installs a tint handler on stderr as the default logger and returns it
func Setup(level slog.Level) *slog.Logger {
	return SetupWriter(os.Stderr, level)
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    w != os.Stderr,
		}),
	).With(SessionKey, uuid.NewString())

	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps debug, info, warn and error to slog levels (default: info)
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
