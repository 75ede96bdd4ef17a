// Package logging provides the leveled diagnostic logger used by the emulator.
// Diagnostics go to stderr so they never interleave with the transcript.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a logging verbosity level.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for lvl, n := range levelNames {
		if n == upper {
			return lvl, nil
		}
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", name)
}

// shared is the state common to a root logger and all loggers derived from it.
type shared struct {
	mu     sync.RWMutex
	level  Level
	logger *log.Logger
}

// Logger writes prefixed, leveled messages.
type Logger struct {
	prefix string
	s      *shared
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the process-wide logger. The initial level comes from
// VFSEMU_LOG_LEVEL and defaults to WARN.
func GetLogger() *Logger {
	once.Do(func() {
		defaultLogger = New(os.Stderr, "vfsemu")
		if env := os.Getenv("VFSEMU_LOG_LEVEL"); env != "" {
			if lvl, err := ParseLevel(env); err == nil {
				defaultLogger.SetLevel(lvl)
			}
		}
	})
	return defaultLogger
}

// New creates a root logger writing to w.
func New(w io.Writer, prefix string) *Logger {
	return &Logger{
		prefix: prefix,
		s: &shared{
			level:  LevelWarn,
			logger: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		},
	}
}

// SetLevel changes the level of this logger and every logger sharing its root.
func (l *Logger) SetLevel(level Level) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.level = level
}

// Level reports the current level.
func (l *Logger) Level() Level {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	return l.s.level
}

// SetOutput redirects all loggers sharing this root.
func (l *Logger) SetOutput(w io.Writer) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.logger.SetOutput(w)
}

// WithPrefix derives a logger that shares level and output but tags its
// messages with an additional component name.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{prefix: l.prefix + "/" + prefix, s: l.s}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.s.mu.RLock()
	enabled := level <= l.s.level
	l.s.mu.RUnlock()
	if !enabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if err := l.s.logger.Output(3, fmt.Sprintf("%s [%s] %s", l.prefix, level, msg)); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log message: %v\n", err)
	}
}

func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Trace(format string, args ...any) { l.logf(LevelTrace, format, args...) }
