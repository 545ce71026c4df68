// Package logging provides the structured logger shared by the engine.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger takes a message followed by key/value pairs:
//
//	logger.Info("window created", "width", 896, "height", 504)
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

// New returns a text logger writing to w at the named level
// ("debug", "info", "warn", "error"). Unknown names fall back to info.
func New(w io.Writer, level string) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slogLogger{l: slog.New(h)}
}

// Stderr is New(os.Stderr, level).
func Stderr(level string) Logger {
	return New(os.Stderr, level)
}

func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop discards everything.
func Nop() Logger { return nop{} }
