package core

import (
	"errors"

	"github.com/huangsam/gitplots/schema"
	"github.com/montanaflynn/stats"
)

// bucketStats returns mean, median and max of bucket totals. Empty input
// yields zeros.
func bucketStats(totals []int) (mean, median, maxValue float64, err error) {
	data := stats.LoadRawData(totals)
	if len(data) == 0 {
		return 0, 0, 0, nil
	}
	if mean, err = stats.Mean(data); err != nil {
		return 0, 0, 0, err
	}
	if median, err = stats.Median(data); err != nil {
		return 0, 0, 0, err
	}
	if maxValue, err = stats.Max(data); err != nil {
		return 0, 0, 0, err
	}
	return mean, median, maxValue, nil
}

// summarizeCategory combines the daily table and its resampled window.
func summarizeCategory(table *schema.CategoryTable, resampled *schema.ResampledTable) (schema.CategorySummary, error) {
	if table.Category != resampled.Category {
		return schema.CategorySummary{}, errors.New("summary tables are not aligned")
	}
	summary := schema.CategorySummary{
		Category:   table.Category,
		Repos:      len(table.Columns),
		Commits:    table.Total(),
		ActiveDays: len(table.Index),
		Width:      resampled.Width,
		Buckets:    len(resampled.Buckets),
	}
	if first, last, ok := schema.DateSpan(table.Index); ok {
		summary.FirstDate = &first
		summary.LastDate = &last
	}

	totals := resampled.Totals()
	mean, median, maxValue, err := bucketStats(totals)
	if err != nil {
		return schema.CategorySummary{}, err
	}
	summary.MeanPerBucket = mean
	summary.MedianPerBucket = median
	summary.MaxPerBucket = maxValue
	summary.WindowCommits = resampled.Total()

	// Ties go to the first repository in name order
	for i, total := range resampled.RepoTotals() {
		if total > summary.TopRepoCommits {
			summary.TopRepo = resampled.Repos[i]
			summary.TopRepoCommits = total
		}
	}
	return summary, nil
}

// Summarize computes per-category activity numbers over the resampled window.
func Summarize(combined *schema.CombinedTable, width schema.BucketWidth, window int) (*schema.SummaryResult, error) {
	resampled, err := ResampleAll(combined, width, window)
	if err != nil {
		return nil, err
	}
	result := &schema.SummaryResult{
		Width:      width,
		Window:     window,
		Categories: make([]schema.CategorySummary, 0, len(resampled)),
	}
	for i, table := range combined.Ordered() {
		summary, err := summarizeCategory(table, resampled[i])
		if err != nil {
			return nil, err
		}
		result.Categories = append(result.Categories, summary)
	}
	return result, nil
}
