package cmd

import (
	"github.com/huangsam/gitplots/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [root]",
	Short: "Start the gitplots MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents read commit tables,
resampled buckets and summaries through standard tools.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, reader)
	},
}
