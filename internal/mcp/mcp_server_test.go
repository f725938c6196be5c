package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gitplots/internal/contract"
	mcp_internal "github.com/huangsam/gitplots/internal/mcp"
	"github.com/huangsam/gitplots/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unix(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Unix()
}

// setup lays out root/work/{A,B} and returns a config and a reader for it.
func setup(t *testing.T) (*contract.Config, contract.LogReader) {
	t.Helper()
	root := t.TempDir()
	for _, repo := range []string{"A", "B"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "work", repo), 0o755))
	}
	reader := contract.StaticLogReader{
		filepath.Join(root, "work", "A"): {unix(2020, 1, 1), unix(2020, 1, 1), unix(2020, 3, 3)},
		filepath.Join(root, "work", "B"): {unix(2020, 1, 2)},
	}
	cfg := &contract.Config{
		RootPath: root,
		Reader:   schema.GitReader,
		Location: time.UTC,
		Workers:  2,
		Output:   schema.JSONOut,
		Bucket:   schema.MonthlyBucket,
		Window:   contract.DefaultWindow,
	}
	return cfg, reader
}

func call(t *testing.T, cfg *contract.Config, reader contract.LogReader, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(cfg, reader)
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotEmpty(t, res.Content)
	return res
}

func text(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestGetCommitTable(t *testing.T) {
	cfg, reader := setup(t)
	res := call(t, cfg, reader, "get_commit_table", map[string]any{})
	require.False(t, res.IsError, text(res))

	var decoded struct {
		Index      []string `json:"index"`
		Categories []struct {
			Category string `json:"category"`
			Columns  []struct {
				Repo   string `json:"repository"`
				Counts []*int `json:"counts"`
			} `json:"columns"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(res)), &decoded))
	assert.Equal(t, []string{"2020-01-01", "2020-01-02", "2020-03-03"}, decoded.Index)
	require.Len(t, decoded.Categories, 1)
	b := decoded.Categories[0].Columns[1]
	assert.Equal(t, "B", b.Repo)
	assert.Nil(t, b.Counts[0])
	require.NotNil(t, b.Counts[1])
	assert.Equal(t, 1, *b.Counts[1])
}

func TestGetResampled(t *testing.T) {
	cfg, reader := setup(t)
	res := call(t, cfg, reader, "get_resampled", map[string]any{"bucket": "monthly", "window": 2.0})
	require.False(t, res.IsError, text(res))

	var result schema.ResampleResult
	require.NoError(t, json.Unmarshal([]byte(text(res)), &result))
	assert.Equal(t, schema.MonthlyBucket, result.Width)
	assert.Equal(t, 2, result.Window)
	require.Len(t, result.Tables, 1)
	assert.Equal(t, [][]int{{0, 1}, {0, 0}}, result.Tables[0].Values)
}

func TestGetSummary(t *testing.T) {
	cfg, reader := setup(t)
	res := call(t, cfg, reader, "get_summary", map[string]any{"bucket": "yearly"})
	require.False(t, res.IsError, text(res))

	var result schema.SummaryResult
	require.NoError(t, json.Unmarshal([]byte(text(res)), &result))
	require.Len(t, result.Categories, 1)
	s := result.Categories[0]
	assert.Equal(t, 4, s.Commits)
	assert.Equal(t, 2, s.Repos)
	assert.Equal(t, "A", s.TopRepo)
	assert.Equal(t, schema.YearlyBucket, s.Width)
}

func TestMCPServerHandlers_Errors(t *testing.T) {
	cfg, reader := setup(t)

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		contains string
	}{
		{"invalid bucket", "get_resampled", map[string]any{"bucket": "hourly"}, "invalid bucket"},
		{"negative window", "get_summary", map[string]any{"window": -1.0}, "window cannot be negative"},
		{"invalid timezone", "get_commit_table", map[string]any{"timezone": "Nowhere/City"}, "invalid timezone"},
		{"missing root", "get_commit_table", map[string]any{"root_path": filepath.Join(cfg.RootPath, "missing")}, "table build failed"},
		{"unknown category", "get_summary", map[string]any{"categories": "personal"}, "summary failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(t, cfg, reader, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, text(res), tt.contains)
		})
	}
}
