// Package logging provides structured logging for the widget engine,
// built on the standard slog package.
//
// Log entries carry a subsystem attribute (Registry, Responsive, Accordion,
// Toggle, Tabs, Showcase) so consumers can filter engine noise. The engine
// logs lifecycle transitions at debug level and recovered callback panics
// at error level; it never logs on hot event paths above debug.
//
// Call Init once at program start:
//
//	logging.Init(slog.LevelInfo, os.Stderr)
//
// Before Init, logging is discarded, which keeps library consumers quiet by
// default.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Subsystem names used by the engine.
const (
	SubsystemRegistry   = "Registry"
	SubsystemResponsive = "Responsive"
	SubsystemAccordion  = "Accordion"
	SubsystemToggle     = "Toggle"
	SubsystemTabs       = "Tabs"
	SubsystemShowcase   = "Showcase"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init configures the package logger with the given level and output.
func Init(level slog.Level, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger installs a caller-provided logger. Pass nil to discard.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = l
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug message for the given subsystem.
func Debug(subsystem, format string, args ...any) {
	log(slog.LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message for the given subsystem.
func Info(subsystem, format string, args ...any) {
	log(slog.LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning for the given subsystem.
func Warn(subsystem, format string, args ...any) {
	log(slog.LevelWarn, subsystem, nil, format, args...)
}

// Error logs an error for the given subsystem. err may be nil.
func Error(subsystem string, err error, format string, args ...any) {
	log(slog.LevelError, subsystem, err, format, args...)
}

func log(level slog.Level, subsystem string, err error, format string, args ...any) {
	l := get()
	if !l.Enabled(context.Background(), level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	attrs := []any{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	l.Log(context.Background(), level, msg, attrs...)
}
