// Package logger writes diagnostic output to stderr. Debug and Info lines
// are gated on the verbose setting so normal runs stay quiet while grading
// output goes to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// VerboseChecker reports whether verbose output is currently enabled. The
// check runs per log call, so flipping the flag takes effect immediately.
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger writes timestamped, component-tagged lines to stderr.
type Logger struct {
	component      string
	verboseChecker VerboseChecker
	writer         io.Writer
}

// New creates a logger for the named component. A nil checker means verbose
// output stays off.
func New(component string, verboseChecker VerboseChecker) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
		writer:         os.Stderr,
	}
}

// WithComponent returns a logger that tags lines with a different component
// while sharing the verbose setting and writer.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: l.verboseChecker,
		writer:         l.writer,
	}
}

// Debug logs only when verbose output is enabled.
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.verbose() {
		l.log("DEBUG", msg, args...)
	}
}

// Info logs only when verbose output is enabled.
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.verbose() {
		l.log("INFO", msg, args...)
	}
}

// Warn logs unconditionally.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log("WARN", msg, args...)
}

// Error logs unconditionally.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log("ERROR", msg, args...)
}

func (l *Logger) verbose() bool {
	return l.verboseChecker != nil && l.verboseChecker.IsVerbose()
}

func (l *Logger) log(level, msg string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05.000")
	component := l.component
	if component == "" {
		component = "main"
	}

	line := fmt.Sprintf("[%s] %s [%s] %s\n",
		timestamp, level, component, fmt.Sprintf(msg, args...))

	// A failed stderr write leaves nowhere else to report to.
	_, _ = fmt.Fprint(l.writer, line)
}
