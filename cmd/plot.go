package cmd

import (
	"github.com/huangsam/gitplots/core"
	"github.com/spf13/cobra"
)

// plotCmd renders stacked area and pie charts.
var plotCmd = &cobra.Command{
	Use:   "plot [root]",
	Short: "Write stacked area and pie charts of commit activity.",
	Long: `Build the daily commit table for every category, resample it at each
bucket width and write two PNG images per width: a stacked area chart and a
pie chart of commits per repository. Categories are stacked as panels.

Examples:
  # Plot the default monthly, weekly and daily charts for ~/git
  gitplots plot

  # Only yearly charts of two categories, kept in a charts folder
  gitplots plot ~/src --categories work,oss --buckets yearly --output-dir charts

  # Keep every bucket instead of the trailing window
  gitplots plot --window 0`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runWith("plot", core.ExecutePlot)
	},
}
