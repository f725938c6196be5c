package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gitplots/core"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/internal/gitclient"
	"github.com/huangsam/gitplots/schema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// logger is the diagnostic logger, built once the verbosity is known.
var logger *logrus.Logger

// reader is the commit log reader selected by --reader.
var reader contract.LogReader

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "gitplots [command] [root]",
	Short: "Plot commit activity across categories of Git repositories.",
	Long: `Gitplots walks a root folder of categories, each holding Git repositories,
and turns their commit history into aligned daily tables and stacked charts.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gitplots")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("GITPLOTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("reader", schema.GitReader)
	viper.SetDefault("timezone", contract.DefaultTimezone)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("color", "yes")
	viper.SetDefault("buckets", joinWidths(schema.DefaultBucketWidths))
	viper.SetDefault("bucket", schema.MonthlyBucket)
	viper.SetDefault("window", contract.DefaultWindow)
	viper.SetDefault("prefix", contract.DefaultPrefix)
	viper.SetDefault("output-dir", ".")
	viper.SetDefault("panel-width", contract.DefaultPanelWidth)
	viper.SetDefault("panel-height", contract.DefaultPanelHeight)
	viper.SetDefault("palettes", joinPalettes(schema.DefaultPalettes))
}

// sharedSetup unmarshals config, runs validation and picks the reader.
func sharedSetup(_ context.Context, cmd *cobra.Command, args []string) error {
	// Command-local flags share names (bucket, window), so bind only the running command's.
	if err := viper.BindPFlags(cmd.LocalNonPersistentFlags()); err != nil {
		return fmt.Errorf("error binding %s flags: %w", cmd.Name(), err)
	}

	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RootPathStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	logger = contract.NewLogger(cfg.Verbose)
	r, err := gitclient.NewReader(cfg.Reader)
	if err != nil {
		return err
	}
	reader = r

	logger.WithFields(logrus.Fields{
		"root":    cfg.RootPath,
		"reader":  cfg.Reader,
		"workers": cfg.Workers,
	}).Debug("configuration resolved")
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// runWith executes fn with the logger attached to the root context.
func runWith(name string, fn core.ExecutorFunc) {
	if err := fn(core.WithLogger(rootCtx, logger), cfg, reader); err != nil {
		contract.LogFatal("Cannot run "+name, err)
	}
}

func joinWidths(widths []schema.BucketWidth) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = string(w)
	}
	return strings.Join(parts, ",")
}

func joinPalettes(palettes []schema.Palette) string {
	parts := make([]string, len(palettes))
	for i, p := range palettes {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
