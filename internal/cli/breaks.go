package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/pkg/models"
)

var breaksCmd = &cobra.Command{
	Use:   "breaks",
	Short: "Print the break recommendations for each session length",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Recommended breaks by session length:")
		fmt.Println()
		for _, d := range core.Durations {
			opts := core.BreakOptions(d)
			labels := make([]string, 0, len(opts))
			for _, o := range opts {
				if o == models.BreakNone {
					labels = append(labels, "none")
					continue
				}
				labels = append(labels, fmt.Sprintf("%d min", o))
			}
			fmt.Printf("  %3d min   %s\n", d, strings.Join(labels, " / "))
		}
	},
}

func init() {
	rootCmd.AddCommand(breaksCmd)
}
