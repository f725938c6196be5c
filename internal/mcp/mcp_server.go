// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var bucketEnum = mcp.Enum("daily", "weekly", "monthly", "yearly")

// NewMCPServer initializes and configures the gitplots MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, reader contract.LogReader) *server.MCPServer {
	s := server.NewMCPServer(
		"gitplots Commit Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		reader:  reader,
	}

	// --- 1. Tool: get_commit_table ---
	s.AddTool(mcp.NewTool("get_commit_table",
		mcp.WithDescription("Read commit dates from every repository under a root and return per-category daily counts. Dates where a repository had no commits are null."),
		mcp.WithString("root_path", mcp.Description("Directory holding one subdirectory per category (defaults to the configured root).")),
		mcp.WithString("categories", mcp.Description("Comma-separated categories to include (defaults to every subdirectory).")),
		mcp.WithString("timezone", mcp.Description("IANA timezone used to turn commit times into dates, e.g. 'UTC' or 'Europe/Berlin'.")),
	), h.handleGetCommitTable)

	// --- 2. Tool: get_resampled ---
	s.AddTool(mcp.NewTool("get_resampled",
		mcp.WithDescription("Return commit counts summed into daily, weekly, monthly or yearly buckets for each category."),
		mcp.WithString("root_path", mcp.Description("Directory holding one subdirectory per category.")),
		mcp.WithString("categories", mcp.Description("Comma-separated categories to include.")),
		mcp.WithString("bucket", mcp.Description("Bucket width. Defaults to 'monthly'."), bucketEnum),
		mcp.WithNumber("window", mcp.Description("Keep only the trailing number of buckets (0 keeps all).")),
	), h.handleGetResampled)

	// --- 3. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize commit activity per category: repositories, commits, active days, date range and per-bucket statistics."),
		mcp.WithString("root_path", mcp.Description("Directory holding one subdirectory per category.")),
		mcp.WithString("categories", mcp.Description("Comma-separated categories to include.")),
		mcp.WithString("bucket", mcp.Description("Bucket width for the statistics. Defaults to 'monthly'."), bucketEnum),
		mcp.WithNumber("window", mcp.Description("Keep only the trailing number of buckets (0 keeps all).")),
	), h.handleGetSummary)

	return s
}

// StartMCPServer starts the gitplots MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, reader contract.LogReader) error {
	s := NewMCPServer(baseCfg, reader)
	return server.ServeStdio(s)
}
