// Package cmd defines the command-line interface for gitplots.
package cmd

import (
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(resampleCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("root", "", "Root folder holding category folders (default $HOME/git)")
	rootCmd.PersistentFlags().StringP("categories", "c", "", "Comma-separated list of categories (default all subfolders)")
	rootCmd.PersistentFlags().String("reader", string(schema.GitReader), "Commit log reader: git or gogit")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA timezone used to turn commit times into dates")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent extractions")
	rootCmd.PersistentFlags().Bool("ignore-files", false, "Skip plain files inside categories instead of failing")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log extraction progress to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Flags of plotCmd
	plotCmd.Flags().String("buckets", "monthly,weekly,daily", "Comma-separated bucket widths to plot")
	plotCmd.Flags().Int("window", contract.DefaultWindow, "Trailing buckets kept per chart (0 = all)")
	plotCmd.Flags().String("prefix", contract.DefaultPrefix, "File name prefix for chart images")
	plotCmd.Flags().String("output-dir", ".", "Folder chart images are written to")
	plotCmd.Flags().Int("panel-width", contract.DefaultPanelWidth, "Width of a category panel in pixels")
	plotCmd.Flags().Int("panel-height", contract.DefaultPanelHeight, "Height of a category panel in pixels")
	plotCmd.Flags().String("palettes", "blues,reds,greens,purples,oranges,greys", "Comma-separated palettes assigned to categories in order")

	// Flags of resampleCmd and summaryCmd
	for _, c := range []*cobra.Command{resampleCmd, summaryCmd} {
		c.Flags().String("bucket", string(schema.MonthlyBucket), "Bucket width: daily or weekly or monthly or yearly")
		c.Flags().Int("window", contract.DefaultWindow, "Trailing buckets kept (0 = all)")
	}
}
