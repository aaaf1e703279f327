// Package logger wraps log/slog with printf-style helpers and tag, package
// and file filtering.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      = new(slog.LevelVar)
	mu            sync.RWMutex
	logFile       *os.File

	// debugFilter traces filtering decisions to stderr.
	debugFilter bool
)

// Init configures the package logger from cfg. It may be called again to
// reconfigure; the previous log file, if any, is closed.
func Init(cfg Config) error {
	cfg.process()

	output, file, err := openOutput(cfg.LogFilePath)
	if err != nil {
		return err
	}

	logLevel.Set(cfg.level)
	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)

	mu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	defaultLogger = slog.New(handler)
	mu.Unlock()

	Infof("Logger initialized at level %s", cfg.level)
	return nil
}

// openOutput resolves a log path: "" discards, "-" is stderr, anything else is appended to.
func openOutput(path string) (io.Writer, *os.File, error) {
	switch path {
	case "":
		return io.Discard, nil, nil
	case "-":
		return os.Stderr, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return f, f, nil
}

// Close releases the log file opened by Init.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	defaultLogger = nil
}

// SetDebugFilter toggles tracing of the filter decisions.
func SetDebugFilter(enabled bool) {
	debugFilter = enabled
}

func current() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	return discard
}

var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// logAtLevel builds the record itself so the source points at the caller of
// the exported wrapper rather than at this file.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := current()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the wrapper
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a tag that filters can match.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	Close()
	os.Exit(1)
}

// Get returns the configured slog logger.
func Get() *slog.Logger {
	return current()
}
