package cmd

import (
	"github.com/huangsam/gitplots/core"
	"github.com/spf13/cobra"
)

// tableCmd prints the daily commit table.
var tableCmd = &cobra.Command{
	Use:   "table [root]",
	Short: "Print daily commit counts per repository.",
	Long: `Print the outer-joined daily table of commit counts for each category.
Days a repository had no commits but another did are shown as "-".

Examples:
  # Inspect one category in the terminal
  gitplots table --categories work

  # Export every category for a notebook
  gitplots table --output parquet --output-file commits.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runWith("table", core.ExecuteTable)
	},
}
