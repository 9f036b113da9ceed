// Package cli defines the focusring command tree. The root command launches
// the interactive timer; the subcommands are small headless views onto the
// same core.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowstate-dev/focusring/internal/audio"
	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/internal/log"
	"github.com/flowstate-dev/focusring/internal/tui"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	flagDuration int
	flagSound    bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "focusring",
	Short: "A focus session timer for the terminal",
	Long: `focusring runs timed focus sessions in the terminal: a countdown ring, a
productivity curve with a moving progress marker, a small task checklist,
and a short celebration with a chime when a session completes.

Session lengths come from a fixed preset set. Nothing is persisted: the
session counter, the tasks, and the break choice live and die with the
process.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Config == nil || Logger == nil || Chime == nil {
			return fmt.Errorf("focusring not initialized")
		}

		cfg := *Config
		if cmd.Flags().Changed("duration") {
			if !core.IsPresetDuration(flagDuration) {
				return fmt.Errorf("invalid --duration %d: must be one of %v minutes", flagDuration, core.Durations)
			}
			cfg.DefaultDurationMin = flagDuration
		}
		if cmd.Flags().Changed("sound") {
			cfg.Sound.Enabled = flagSound
		}

		logger := Logger
		chime := Chime
		if flagDebug {
			path := cfg.Debug.LogFile
			if path == "" {
				path = "focusring-debug.log"
			}
			fileLogger, logFile, err := log.NewFile(path)
			if err != nil {
				return fmt.Errorf("opening debug log: %w", err)
			}
			defer func() { _ = logFile.Close() }()
			logger = fileLogger
		}
		if flagDebug || cmd.Flags().Changed("sound") {
			chime = audio.NewChime(logger, cfg.Sound.Enabled)
		}

		logger.Infof("starting session view: duration=%dmin sound=%t", cfg.DefaultDurationMin, cfg.Sound.Enabled)
		p := tea.NewProgram(tui.New(&cfg, logger, chime), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("focusring %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagDuration, "duration", 25, "Session length in minutes, from the preset set")
	rootCmd.Flags().BoolVar(&flagSound, "sound", true, "Play the completion chime")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to debug.log_file (default focusring-debug.log)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
