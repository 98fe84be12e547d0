// Package logger holds the process-wide slog logger used by cursorctl and the
// examples. The cursor library itself never logs.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// L is the global logger instance. It discards all output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	File    string     // Log file path; empty means Writer
	Writer  io.Writer  // Destination when File is empty. Default: os.Stderr
	JSON    bool       // Use the JSON handler instead of the text handler
	Level   slog.Level // Minimum log level
}

// Init configures logging and returns a close function for the log file, if
// one was opened.
func Init(opts Options) (func() error, error) {
	noop := func() error { return nil }
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return noop, nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	closeFn := noop
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return noop, err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return noop, err
		}
		w, closeFn = f, f.Close
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
	} else {
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return closeFn, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
