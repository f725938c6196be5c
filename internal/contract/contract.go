// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"io"

	"github.com/huangsam/gitplots/schema"
)

// LogReader defines the one history operation the table builder needs.
// This allows the table building logic to be tested without a real git executable.
type LogReader interface {
	// ReadTimestamps returns the author timestamp, in seconds since the epoch,
	// of every commit reachable from HEAD. The path may be a working tree or a
	// git metadata directory. A repository without commits yields an empty slice.
	ReadTimestamps(ctx context.Context, repoPath string) ([]int64, error)
}

// ChartRenderer draws resampled category tables as images.
type ChartRenderer interface {
	// RenderArea draws one stacked-area panel per category.
	RenderArea(w io.Writer, tables []*schema.ResampledTable) error

	// RenderPie draws one pie panel per category.
	RenderPie(w io.Writer, tables []*schema.ResampledTable) error
}
