package cmd

import (
	"github.com/huangsam/gitplots/core"
	"github.com/spf13/cobra"
)

// resampleCmd prints bucket sums.
var resampleCmd = &cobra.Command{
	Use:   "resample [root]",
	Short: "Print commit sums per bucket and repository.",
	Long: `Sum the daily table into daily, weekly, monthly or yearly buckets and keep
the trailing window of buckets. These are the values the plot command draws.

Examples:
  gitplots resample --bucket weekly --window 12
  gitplots resample --bucket yearly --window 0 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runWith("resample", core.ExecuteResample)
	},
}
