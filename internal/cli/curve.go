package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/internal/render"
)

var (
	curveWidth  int
	curveHeight int
)

var curveCmd = &cobra.Command{
	Use:   "curve [minutes]",
	Short: "Print the productivity curve for a session length",
	Long: `Print the productivity curve sampled for a session length as a braille
chart, without starting the interactive timer.

The session length must come from the preset set. Without an argument the
configured default length is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes := 25
		if Config != nil {
			minutes = Config.DefaultDurationMin
		}
		if len(args) == 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid session length %q: %w", args[0], err)
			}
			minutes = m
		}
		if !core.IsPresetDuration(minutes) {
			return fmt.Errorf("invalid session length %d: must be one of %v minutes", minutes, core.Durations)
		}

		fmt.Printf("Productivity curve, %d minute session\n\n", minutes)
		points := core.SampleCurve(minutes)
		for _, row := range render.Chart(points, -1, curveWidth, curveHeight) {
			fmt.Println(row)
		}
		fmt.Printf("\n0%s%*s\n", "%", curveWidth-2, "100%")
		return nil
	},
}

func init() {
	curveCmd.Flags().IntVar(&curveWidth, "width", 60, "Chart width in cells")
	curveCmd.Flags().IntVar(&curveHeight, "height", 12, "Chart height in cells")
	rootCmd.AddCommand(curveCmd)
}
