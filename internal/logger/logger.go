// Package logger provides the text sink used for progress and debug output.
// Nothing in the engine branches on what it logs.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Severity classifies a log line.
type Severity int

const (
	Blank Severity = iota
	Info
	Error
)

func (s Severity) prefix() string {
	switch s {
	case Blank:
		return ""
	case Info:
		return "Info: "
	case Error:
		return "Error: "
	default:
		return fmt.Sprintf("Severity(%d): ", int(s))
	}
}

// Logger accepts one line of text at a time.
type Logger interface {
	Log(s Severity, text string)
}

// StdLogger writes lines through a std log.Logger and is safe for concurrent use.
type StdLogger struct {
	l *log.Logger
}

// New creates a Logger writing to w.
func New(w io.Writer) *StdLogger {
	return &StdLogger{l: log.New(w, "", 0)}
}

// Default returns a Logger writing to standard output.
func Default() *StdLogger {
	return New(os.Stdout)
}

// Log writes text prefixed by its severity.
func (l *StdLogger) Log(s Severity, text string) {
	l.l.Print(s.prefix() + text)
}

type discard struct{}

func (discard) Log(Severity, string) {}

// Discard drops every line.
var Discard Logger = discard{}

// Printf formats and logs a line. A nil Logger drops it.
func Printf(l Logger, s Severity, format string, args ...any) {
	if l == nil {
		return
	}
	l.Log(s, fmt.Sprintf(format, args...))
}
