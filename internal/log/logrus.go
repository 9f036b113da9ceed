package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	*logrus.Entry
}

// NewLogrus returns a Logger backed by a logrus entry.
func NewLogrus(entry *logrus.Entry) Logger {
	return logrusLogger{Entry: entry}
}

func (l logrusLogger) WithValues(kv Kv) Logger {
	return NewLogrus(l.Entry.WithFields(logrus.Fields(kv)))
}

// NewFile returns a debug-level logger appending to the file at path. The TUI
// owns the terminal, so file output is the only logging destination. The
// caller owns the returned closer.
func NewFile(path string) (Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return NewLogrus(logrus.NewEntry(l)), f, nil
}
