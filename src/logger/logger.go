package logger

import (
	"fmt"
	"io"
	"os"
)

// Logger defines the interface for logging throughout the application.
// The report itself goes to stdout, so log lines never do.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// ConsoleLogger writes human-readable logs to a single writer, stderr by default.
// Used with --verbose.
type ConsoleLogger struct {
	out io.Writer
}

func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleLogger{out: out}
}

func (c *ConsoleLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(c.out, "[INFO] "+msg+"\n", args...)
}

func (c *ConsoleLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(c.out, "[ERROR] "+msg+"\n", args...)
}

func (c *ConsoleLogger) Debug(msg string, args ...interface{}) {
	fmt.Fprintf(c.out, "[DEBUG] "+msg+"\n", args...)
}

// SilentLogger discards all log messages.
// Used by default so stdout and stderr carry only the report and errors.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...interface{})  {}
func (s *SilentLogger) Error(msg string, args ...interface{}) {}
func (s *SilentLogger) Debug(msg string, args ...interface{}) {}
