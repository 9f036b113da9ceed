package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowstate-dev/focusring/internal/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or scaffold the .focusring.yaml configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Config == nil {
			return fmt.Errorf("focusring not initialized")
		}
		data, err := core.EncodeConfig(Config)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter .focusring.yaml with the default settings",
	Long: `Write a starter .focusring.yaml into the given directory (the current
directory by default). An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		path, err := core.WriteDefaultConfig(dir)
		if err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
