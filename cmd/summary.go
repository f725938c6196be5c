package cmd

import (
	"github.com/huangsam/gitplots/core"
	"github.com/spf13/cobra"
)

// summaryCmd prints per-category statistics.
var summaryCmd = &cobra.Command{
	Use:   "summary [root]",
	Short: "Print commit statistics for each category.",
	Long: `Report repositories, commits, active days, first and last commit date,
and the mean, median and max commits per bucket within the window.

Examples:
  gitplots summary
  gitplots summary --bucket weekly --window 26 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runWith("summary", core.ExecuteSummary)
	},
}
