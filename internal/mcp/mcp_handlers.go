package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gitplots/core"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	reader  contract.LogReader
}

// configFor clones the base config and applies the arguments every tool shares.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	overrides := contract.Overrides{
		Root:       request.GetString("root_path", ""),
		Categories: request.GetString("categories", ""),
		Timezone:   request.GetString("timezone", ""),
		Bucket:     request.GetString("bucket", ""),
		Window:     request.GetInt("window", cfg.Window),
	}
	if err := contract.RevalidateOverrides(cfg, overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleGetCommitTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	table, err := core.GetCommitTable(core.WithSuppressHeader(ctx), cfg, h.reader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("table build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetResampled(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := core.GetResampleResults(core.WithSuppressHeader(ctx), cfg, h.reader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resample failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := core.GetSummaryResults(core.WithSuppressHeader(ctx), cfg, h.reader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
