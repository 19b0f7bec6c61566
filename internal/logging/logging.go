// Package logging provides the small leveled logger used by the obsplan CLI.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled, optionally named logger. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
	name  string
}

// New creates a logger writing to out at the given minimum level.
func New(level Level, out io.Writer) *Logger {
	return &Logger{level: level, out: out}
}

// Named returns a child logger whose lines carry the given component name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{level: l.level, out: l.out, name: name}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{level: LevelError + 1, out: io.Discard}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	stamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	if l.name != "" {
		fmt.Fprintf(l.out, "%s [%s] %s: %s\n", stamp, level, l.name, msg)
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n", stamp, level, msg)
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs an info message.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarn, format, args...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
