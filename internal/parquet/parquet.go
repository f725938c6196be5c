// Package parquet provides data structures and functions for exporting gitplots
// tables to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gitplots/schema"
	"github.com/parquet-go/parquet-go"
)

// CommitCount is one cell of the daily combined table.
type CommitCount struct {
	// Category is the top-level directory the repository lives in
	Category string `parquet:"category,snappy,dict"`

	// Repository is the repository directory name
	Repository string `parquet:"repository,snappy,dict"`

	// Date is the commit date at midnight UTC
	Date time.Time `parquet:"date,snappy"`

	// Commits is null when the repository had no commits on a date another
	// repository of the same category did
	Commits *int32 `parquet:"commits,optional,snappy"`
}

// BucketCount is one bucket sum of a resampled table.
type BucketCount struct {
	Category    string    `parquet:"category,snappy,dict"`
	Repository  string    `parquet:"repository,snappy,dict"`
	Bucket      string    `parquet:"bucket,snappy,dict"`
	BucketStart time.Time `parquet:"bucket_start,snappy"`
	Commits     int32     `parquet:"commits,snappy"`
}

// CategoryStats is one row of the per-category summary.
type CategoryStats struct {
	Category        string     `parquet:"category,snappy"`
	Repos           int32      `parquet:"repos,snappy"`
	Commits         int32      `parquet:"commits,snappy"`
	ActiveDays      int32      `parquet:"active_days,snappy"`
	FirstDate       *time.Time `parquet:"first_date,optional,snappy"`
	LastDate        *time.Time `parquet:"last_date,optional,snappy"`
	Bucket          string     `parquet:"bucket,snappy"`
	Buckets         int32      `parquet:"buckets,snappy"`
	WindowCommits   int32      `parquet:"window_commits,snappy"`
	MeanPerBucket   float64    `parquet:"mean_per_bucket,snappy"`
	MedianPerBucket float64    `parquet:"median_per_bucket,snappy"`
	MaxPerBucket    float64    `parquet:"max_per_bucket,snappy"`
	TopRepo         *string    `parquet:"top_repo,optional,snappy"`
	TopRepoCommits  int32      `parquet:"top_repo_commits,snappy"`
}

// WriteCommitCountsParquet writes daily cells to a Parquet file.
func WriteCommitCountsParquet(data []CommitCount, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteBucketCountsParquet writes bucket sums to a Parquet file.
func WriteBucketCountsParquet(data []BucketCount, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteCategoryStatsParquet writes summary rows to a Parquet file.
func WriteCategoryStatsParquet(data []CategoryStats, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes rows with a schema inferred from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		_ = file.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close writes the footer
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return file.Close()
}

// ConvertCombinedTable flattens a combined table into one row per
// (category, repository, date) of each category's own index.
func ConvertCombinedTable(table *schema.CombinedTable) []CommitCount {
	var rows []CommitCount
	for _, t := range table.Ordered() {
		for _, col := range t.Columns {
			for i, d := range t.Index {
				row := CommitCount{
					Category:   t.Category,
					Repository: col.Repo,
					Date:       d.In(time.UTC),
				}
				if cell := col.Cells[i]; cell.Present {
					n := int32(cell.Count)
					row.Commits = &n
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// ConvertResampledTables flattens resampled tables into one row per
// (category, repository, bucket).
func ConvertResampledTables(tables []*schema.ResampledTable) []BucketCount {
	var rows []BucketCount
	for _, t := range tables {
		for r, repo := range t.Repos {
			for b, start := range t.Buckets {
				rows = append(rows, BucketCount{
					Category:    t.Category,
					Repository:  repo,
					Bucket:      string(t.Width),
					BucketStart: start.In(time.UTC),
					Commits:     int32(t.Values[r][b]),
				})
			}
		}
	}
	return rows
}

// ConvertCategorySummaries converts summary records for Parquet export.
func ConvertCategorySummaries(records []schema.CategorySummary) []CategoryStats {
	result := make([]CategoryStats, len(records))
	for i, s := range records {
		row := CategoryStats{
			Category:        s.Category,
			Repos:           int32(s.Repos),
			Commits:         int32(s.Commits),
			ActiveDays:      int32(s.ActiveDays),
			Bucket:          string(s.Width),
			Buckets:         int32(s.Buckets),
			WindowCommits:   int32(s.WindowCommits),
			MeanPerBucket:   s.MeanPerBucket,
			MedianPerBucket: s.MedianPerBucket,
			MaxPerBucket:    s.MaxPerBucket,
			TopRepoCommits:  int32(s.TopRepoCommits),
		}
		if s.FirstDate != nil {
			first := s.FirstDate.In(time.UTC)
			row.FirstDate = &first
		}
		if s.LastDate != nil {
			last := s.LastDate.In(time.UTC)
			row.LastDate = &last
		}
		if s.TopRepo != "" {
			top := s.TopRepo
			row.TopRepo = &top
		}
		result[i] = row
	}
	return result
}
