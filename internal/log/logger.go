// Package log provides the leveled diagnostic logger used by the loop
// controller. A nil *Logger is valid and discards everything, so callers
// never need nil checks at call sites.
package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level represents the severity of a log line.
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

// Logger writes timestamped, leveled lines to a writer, thread-safely.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
}

// New creates a logger writing to out. Lines below minLevel are dropped.
func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{out: out, minLevel: minLevel}
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.out == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s: %s\n", timestamp, level.String(), message)
}

// Debug writes a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error writes an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}
