package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/internal/log"
)

// testChime is a Player that never touches an audio device.
type testChime struct {
	plays int
}

func (c *testChime) Play()         { c.plays++ }
func (c *testChime) Enabled() bool { return false }

// captureStdout captures stdout output during fn execution.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading pipe: %v", err)
	}
	return string(out)
}

func TestSetVersionInfo(t *testing.T) {
	// Save originals.
	origVersion := appVersion
	origCommit := appCommit
	origDate := appDate
	defer func() {
		appVersion = origVersion
		appCommit = origCommit
		appDate = origDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-08-21")

	if appVersion != "1.2.3" {
		t.Errorf("appVersion = %q, want 1.2.3", appVersion)
	}
	if appCommit != "abc1234" {
		t.Errorf("appCommit = %q, want abc1234", appCommit)
	}
	if appDate != "2026-08-21" {
		t.Errorf("appDate = %q, want 2026-08-21", appDate)
	}
}

func TestRootCmd_NotInitialized(t *testing.T) {
	origConfig := Config
	origLogger := Logger
	origChime := Chime
	defer func() {
		Config = origConfig
		Logger = origLogger
		Chime = origChime
	}()
	Config = nil
	Logger = nil
	Chime = nil

	err := rootCmd.RunE(rootCmd, nil)
	if err == nil {
		t.Fatal("expected error when services are not wired")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRootCmd_InvalidDurationFlag(t *testing.T) {
	origConfig := Config
	origLogger := Logger
	origChime := Chime
	defer func() {
		Config = origConfig
		Logger = origLogger
		Chime = origChime
	}()
	Config = core.DefaultGlobalConfig()
	Logger = log.Noop
	Chime = &testChime{}

	if err := rootCmd.Flags().Set("duration", "26"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer func() {
		flag := rootCmd.Flags().Lookup("duration")
		flag.Changed = false
		_ = flag.Value.Set(flag.DefValue)
	}()

	err := rootCmd.RunE(rootCmd, nil)
	if err == nil {
		t.Fatal("expected error for a non-preset --duration")
	}
	if !strings.Contains(err.Error(), "invalid --duration 26") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"nonexistent-command"})

	err := Execute()
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecute_VersionSubcommand(t *testing.T) {
	origVersion := appVersion
	defer func() { appVersion = origVersion }()
	appVersion = "test-ver"

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})

	output := captureStdout(t, func() {
		if err := Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(output, "focusring test-ver") {
		t.Errorf("expected version line, got %q", output)
	}
}

func TestSubcommand_Registration(t *testing.T) {
	for _, name := range []string{"version", "curve", "breaks", "config"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s command not registered on root", name)
		}
	}
}
