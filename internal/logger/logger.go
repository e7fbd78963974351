// internal/logger/logger.go
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
	initOnce      sync.Once
)

// Init initializes the logger package from a processed Config. The
// writer is derived from cfg.LogFilePath: empty or "-" selects stderr.
// Init may be called once; later calls are ignored.
func Init(cfg Config) error {
	var initErr error
	initOnce.Do(func() {
		cfg.process()

		var output io.Writer = os.Stderr
		if cfg.LogFilePath != "" && cfg.LogFilePath != "-" {
			f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
			if err != nil {
				initErr = fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
				return
			}
			output = f
		}

		opts := slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					source := a.Value.Any().(*slog.Source)
					source.File = filepath.Base(source.File)
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		base := slog.NewTextHandler(output, &opts)
		defaultLogger = slog.New(newFilteringHandler(base, &cfg))
	})
	return initErr
}

// ensureInitialized provides a safe discard default if Init was never
// called, so library consumers get no surprise output.
func ensureInitialized() {
	initOnce.Do(func() {
		handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo})
		defaultLogger = slog.New(handler)
	})
}

// logAtLevel creates and logs a record at the given level, capturing
// the caller of the public wrapper as the source.
func logAtLevel(level slog.Level, format string, attrs []slog.Attr, args ...interface{}) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the wrapper itself.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(attrs...)
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, format, nil, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, format, nil, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, format, nil, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, format, nil, args...)
}

// DebugTagf logs a tagged debug message, subject to tag filtering.
func DebugTagf(tag, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, format, []slog.Attr{slog.String(tagKey, tag)}, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
