// Package logger is the logging seam for sysmon components. Packages log
// debug, info, warn, and error messages without coupling to a concrete
// sink. All output goes to stderr; stdout is reserved for command output
// and protocol traffic.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the logging interface passed through the tool. Methods take
// printf-style format strings.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes to stderr through the standard log package. Debug
// output is gated on the SYSMON_DEBUG environment variable, checked per
// call so tests can flip it after construction.
type envLogger struct {
	prefix string
}

// NewEnvLogger returns the stderr logger used by the CLI. The prefix goes
// in front of every message, like "[sysmon]".
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv("SYSMON_DEBUG") == "" {
		return
	}
	l.printf("DEBUG: ", format, args)
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.printf("", format, args)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.printf("WARN: ", format, args)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.printf("ERROR: ", format, args)
}

func (l *envLogger) printf(level, format string, args []interface{}) {
	log.Printf("%s %s%s", l.prefix, level, fmt.Sprintf(format, args...))
}

// noopLogger discards everything.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one captured log call.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages so tests can assert on what was logged.
// Safe for concurrent use.
type BufferLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewBufferLogger creates an empty capture logger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args) }

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

// HasLevel reports whether any message was captured at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Messages returns a copy of the captured messages in order.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Clear drops all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = l.messages[:0]
}
