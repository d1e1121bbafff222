// Package logger provides leveled logging for the SearXNG MCP adapter.
// All output goes to stderr: stdout carries the MCP stdio transport and
// must stay clean. The active level comes from the LOG_LEVEL setting or
// the --verbose flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level is the logging verbosity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu     sync.RWMutex
	level  Level     = LevelInfo
	output io.Writer = os.Stderr
)

// ParseLevel converts a LOG_LEVEL string to a Level.
// Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q (accepted: DEBUG, INFO, WARN, ERROR)", s)
	}
}

// String returns the level name.
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
		return "INFO"
	}
}

// SetLevel sets the active logging level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the active logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func log(l Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l >= level {
		fmt.Fprintf(output, "["+l.String()+"] "+format+"\n", args...)
	}
}

// Debug prints a message at DEBUG level.
func Debug(format string, args ...any) {
	log(LevelDebug, format, args...)
}

// Info prints a message at INFO level.
func Info(format string, args ...any) {
	log(LevelInfo, format, args...)
}

// Warn prints a message at WARN level.
func Warn(format string, args ...any) {
	log(LevelWarn, format, args...)
}

// Error prints a message at ERROR level.
func Error(format string, args ...any) {
	log(LevelError, format, args...)
}
