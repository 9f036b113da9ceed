// Package log provides the logging interface used across focusring.
//
// The TUI owns stdout and stderr while it runs, so the default logger is
// Noop; a real logger is only wired when the user points debug logging at a
// file. Components receive the Logger interface and never construct their
// own.
package log

// Kv is a helper type for structured logging key-value pairs.
type Kv = map[string]any

// Logger is the interface the application loggers implement.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	WithValues(values Kv) Logger
}

// Noop is a logger that discards all log output. It is the default logger
// when no debug log file is configured.
var Noop Logger = noop{}

type noop struct{}

func (noop) Debugf(string, ...any)     {}
func (noop) Infof(string, ...any)      {}
func (noop) Warningf(string, ...any)   {}
func (noop) Errorf(string, ...any)     {}
func (n noop) WithValues(Kv) Logger    { return n }
