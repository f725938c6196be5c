package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints build details of the binary.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gitplots build details.",
	Long: `Print the gitplots release, the commit it was built from, the build time
and the Go runtime. Attach this output when reporting a chart or table that
looks wrong.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("gitplots CLI\n")
		cmd.Printf("  Version:  %s\n", version)
		cmd.Printf("  Commit:   %s\n", commit)
		cmd.Printf("  Built:    %s\n", date)
		cmd.Printf("  Go:       %s\n", runtime.Version())
		cmd.Printf("  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
