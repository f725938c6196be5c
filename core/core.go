// Package core has core logic for table building, resampling and plotting.
package core

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/internal/outwriter"
	"github.com/huangsam/gitplots/internal/render"
	"github.com/huangsam/gitplots/schema"
	"github.com/sirupsen/logrus"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, reader contract.LogReader) error

// GetCommitTable builds the combined daily table for the configured root.
func GetCommitTable(ctx context.Context, cfg *contract.Config, reader contract.LogReader) (*schema.CombinedTable, error) {
	table, err := BuildCombinedTable(ctx, cfg, reader)
	if err != nil {
		return nil, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogRunHeader(cfg, table)
	}
	return table, nil
}

// GetResampleResults builds the table and resamples it at cfg.Bucket.
func GetResampleResults(ctx context.Context, cfg *contract.Config, reader contract.LogReader) (*schema.ResampleResult, error) {
	table, err := GetCommitTable(ctx, cfg, reader)
	if err != nil {
		return nil, err
	}
	tables, err := ResampleAll(table, cfg.Bucket, cfg.Window)
	if err != nil {
		return nil, err
	}
	return &schema.ResampleResult{Width: cfg.Bucket, Window: cfg.Window, Tables: tables}, nil
}

// GetSummaryResults builds the table and summarizes each category at cfg.Bucket.
func GetSummaryResults(ctx context.Context, cfg *contract.Config, reader contract.LogReader) (*schema.SummaryResult, error) {
	table, err := GetCommitTable(ctx, cfg, reader)
	if err != nil {
		return nil, err
	}
	return Summarize(table, cfg.Bucket, cfg.Window)
}

// ExecuteTable prints the combined daily table.
// It serves as the main entry point for the 'table' command.
func ExecuteTable(ctx context.Context, cfg *contract.Config, reader contract.LogReader) error {
	start := time.Now()
	table, err := GetCommitTable(ctx, cfg, reader)
	if err != nil {
		return err
	}
	return outwriter.PrintCommitTable(table, cfg, time.Since(start))
}

// ExecuteResample prints bucket sums for every category.
// It serves as the main entry point for the 'resample' command.
func ExecuteResample(ctx context.Context, cfg *contract.Config, reader contract.LogReader) error {
	start := time.Now()
	result, err := GetResampleResults(ctx, cfg, reader)
	if err != nil {
		return err
	}
	return outwriter.PrintResampleResults(result, cfg, time.Since(start))
}

// ExecuteSummary prints per-category statistics.
// It serves as the main entry point for the 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, reader contract.LogReader) error {
	start := time.Now()
	result, err := GetSummaryResults(ctx, cfg, reader)
	if err != nil {
		return err
	}
	return outwriter.PrintSummaryResults(result, cfg, time.Since(start))
}

// ExecutePlot renders area and pie charts for every configured bucket width.
// It serves as the main entry point for the 'plot' command.
func ExecutePlot(ctx context.Context, cfg *contract.Config, reader contract.LogReader) error {
	start := time.Now()
	renderer := render.NewRenderer(render.NewStyle(cfg))
	artifacts, err := PlotCharts(ctx, cfg, reader, renderer)
	if err != nil {
		return err
	}
	return outwriter.PrintPlotArtifacts(artifacts, cfg, time.Since(start))
}

// PlotCharts builds the table once and writes one PNG per (bucket width,
// chart kind) into cfg.OutputDir.
func PlotCharts(ctx context.Context, cfg *contract.Config, reader contract.LogReader, renderer contract.ChartRenderer) ([]schema.PlotArtifact, error) {
	logger := loggerFrom(ctx)
	table, err := GetCommitTable(ctx, cfg, reader)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	var artifacts []schema.PlotArtifact
	for _, width := range cfg.Buckets {
		widthCfg := cfg.CloneWithBucket(width, cfg.Window)
		tables, err := ResampleAll(table, widthCfg.Bucket, widthCfg.Window)
		if err != nil {
			return nil, err
		}
		for _, kind := range schema.AllChartKinds {
			path := widthCfg.ArtifactPath(kind, widthCfg.Bucket)
			draw := renderer.RenderArea
			if kind == schema.PieChart {
				draw = renderer.RenderPie
			}
			if err := writeArtifact(path, func(w io.Writer) error { return draw(w, tables) }); err != nil {
				return nil, err
			}
			logger.WithFields(logrus.Fields{"kind": kind, "bucket": width, "path": path}).Debug("wrote chart")
			artifacts = append(artifacts, schema.PlotArtifact{Kind: kind, Width: width, Path: path})
		}
	}
	return artifacts, nil
}

// writeArtifact writes a file through fn, removing it when fn fails.
func writeArtifact(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Join(err, os.Remove(path))
	}
	return nil
}
