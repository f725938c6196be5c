package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/internal/parquet"
	"github.com/huangsam/gitplots/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintResampleResults outputs bucket sums, dispatching based on the output format configured.
func PrintResampleResults(result *schema.ResampleResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON buckets"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResampleCSV(w, result)
		}, "Wrote CSV buckets"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteBucketCountsParquet(parquet.ConvertResampledTables(result.Tables), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		parquetMessage("buckets", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResampleText(w, result, cfg, duration)
		}, "Wrote buckets")
	}
	return nil
}

// writeResampleCSV writes one row per (category, repository, bucket).
func writeResampleCSV(w io.Writer, result *schema.ResampleResult) error {
	header := []string{"category", "repository", "bucket", "bucket_start", "commits"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, t := range result.Tables {
			for r, repo := range t.Repos {
				for b, start := range t.Buckets {
					row := []string{t.Category, repo, string(t.Width), start.String(), strconv.Itoa(t.Values[r][b])}
					if err := csvWriter.Write(row); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// writeResampleText prints one table per category with buckets as rows,
// repositories as columns and a trailing total.
func writeResampleText(w io.Writer, result *schema.ResampleResult, cfg *contract.Config, duration time.Duration) error {
	maxCols := GetMaxTableColumns(cfg, 1)
	for _, t := range result.Tables {
		title := fmt.Sprintf("📁 %s (%d repos, %d commits in %d %s buckets)", t.Category, len(t.Repos), t.Total(), len(t.Buckets), t.Width)
		fmt.Fprintln(w, contract.Colorize(contract.CategoryColor, title, cfg.UseColors))
		if t.Empty() {
			fmt.Fprintln(w, contract.Colorize(contract.MutedColor, "No commits", cfg.UseColors))
			continue
		}

		shown := min(len(t.Repos), maxCols)
		tbl := tablewriter.NewWriter(w)

		headers := []string{"Bucket"}
		for _, repo := range t.Repos[:shown] {
			headers = append(headers, contract.TruncateName(repo, maxRepoNameLen))
		}
		headers = append(headers, "Total")
		tbl.Header(headers)

		tbl.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		totals := t.Totals()
		data := make([][]string, 0, len(t.Buckets))
		for b, start := range t.Buckets {
			row := []string{schema.FormatBucket(t.Width, start)}
			for r := range shown {
				row = append(row, formatCount(t.Values[r][b], cfg.UseColors))
			}
			row = append(row, strconv.Itoa(totals[b]))
			data = append(data, row)
		}

		if err := tbl.Bulk(data); err != nil {
			return err
		}
		if err := tbl.Render(); err != nil {
			return err
		}
		if hidden := len(t.Repos) - shown; hidden > 0 {
			fmt.Fprintln(w, hiddenNote(hidden))
		}
	}
	fmt.Fprintf(w, "Resampled in %v with %d workers. Bucket: %s, window: %s\n", duration, cfg.Workers, result.Width, formatWindow(result.Window))
	return nil
}

// formatCount mutes zero buckets.
func formatCount(n int, useColors bool) string {
	if n == 0 {
		return contract.Colorize(contract.MutedColor, "0", useColors)
	}
	return contract.Colorize(contract.CountColor, strconv.Itoa(n), useColors)
}

func formatWindow(window int) string {
	if window == 0 {
		return "all"
	}
	return strconv.Itoa(window)
}
