package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNoop_DiscardsEverything(t *testing.T) {
	// Must not panic, and WithValues must keep returning a usable logger.
	l := Noop.WithValues(Kv{"component": "test"})
	l.Debugf("debug %d", 1)
	l.Infof("info")
	l.Warningf("warning")
	l.Errorf("error: %v", "boom")
}

func TestNewLogrus_WritesFormattedOutput(t *testing.T) {
	var buf bytes.Buffer
	lr := logrus.New()
	lr.Out = &buf
	lr.SetLevel(logrus.DebugLevel)
	lr.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	l := NewLogrus(logrus.NewEntry(lr))
	l.Infof("session %s done", "abc")

	if got := buf.String(); !strings.Contains(got, "session abc done") {
		t.Errorf("log output = %q, want it to contain the formatted message", got)
	}
}

func TestNewLogrus_WithValuesAddsFields(t *testing.T) {
	var buf bytes.Buffer
	lr := logrus.New()
	lr.Out = &buf
	lr.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	l := NewLogrus(logrus.NewEntry(lr)).WithValues(Kv{"component": "audio"})
	l.Warningf("speaker init failed")

	got := buf.String()
	if !strings.Contains(got, "component=audio") {
		t.Errorf("log output = %q, want component field", got)
	}
	if !strings.Contains(got, "speaker init failed") {
		t.Errorf("log output = %q, want message", got)
	}
}

func TestNewLogrus_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lr := logrus.New()
	lr.Out = &buf
	lr.SetLevel(logrus.InfoLevel)

	l := NewLogrus(logrus.NewEntry(lr))
	l.Debugf("hidden")

	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
}
