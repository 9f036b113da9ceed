// Package internal provides the App struct that wires the focusring
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/flowstate-dev/focusring/internal/audio"
	"github.com/flowstate-dev/focusring/internal/cli"
	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/internal/log"
	"github.com/flowstate-dev/focusring/pkg/models"
)

// App holds the service dependencies for focusring.
type App struct {
	ConfigMgr core.ConfigurationManager
	Config    *models.GlobalConfig
	Logger    log.Logger
	Chime     audio.Player

	logFile io.Closer
}

// NewApp loads and validates the configuration, builds the ambient services,
// and wires the cli package variables. searchPaths are the directories
// checked for .focusring.yaml; when none are given the current directory and
// $HOME are used.
func NewApp(searchPaths ...string) (*App, error) {
	if len(searchPaths) == 0 {
		searchPaths = defaultSearchPaths()
	}

	app := &App{Logger: log.Noop}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(searchPaths...)
	cfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Logging ---
	// The TUI owns stdout, so logs only go to a file and only when asked.
	if cfg.Debug.LogFile != "" {
		logger, logFile, err := log.NewFile(cfg.Debug.LogFile)
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		app.Logger = logger
		app.logFile = logFile
	}

	// --- Audio ---
	app.Chime = audio.NewChime(app.Logger, cfg.Sound.Enabled)

	// --- Wire CLI package-level variables ---
	cli.Config = app.Config
	cli.Logger = app.Logger
	cli.Chime = app.Chime

	return app, nil
}

// Close releases resources held by the App, such as the debug log file
// handle. It is safe to call when no log file was opened.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return paths
}
