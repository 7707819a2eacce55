// Package log is the logger of the amountfmt command.
// Logging is disabled until Enable is called.
package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

var (
	mu      sync.RWMutex
	level   = new(slog.LevelVar)
	logger  = slog.New(discardHandler{})
	enabled bool
)

// Enable starts writing log records to w at the current level.
// Time attributes are dropped to keep command output short.
func Enable(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(h)
	enabled = true
}

// Disable discards all further log records.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(discardHandler{})
	enabled = false
}

// IsEnabled reports whether log records are being written.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetLevel sets the minimum level of records written.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// With returns a logger that includes the given attributes in each record.
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

// Debug logs at [slog.LevelDebug].
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs at [slog.LevelInfo].
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn logs at [slog.LevelWarn].
func Warn(msg string, args ...any) { current().Warn(msg, args...) }

// DebugContext logs at [slog.LevelDebug] with the given context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	current().DebugContext(ctx, msg, args...)
}

// ErrorContext logs at [slog.LevelError] with the given context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	current().ErrorContext(ctx, msg, args...)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
