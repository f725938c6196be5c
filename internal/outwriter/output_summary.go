package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/internal/parquet"
	"github.com/huangsam/gitplots/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummaryResults outputs per-category statistics, dispatching based on the output format configured.
func PrintSummaryResults(result *schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON summary"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, result, fmtFloat)
		}, "Wrote CSV summary"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteCategoryStatsParquet(parquet.ConvertCategorySummaries(result.Categories), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		parquetMessage("summary", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryText(w, result, cfg, fmtFloat, duration)
		}, "Wrote summary")
	}
	return nil
}

// writeSummaryCSV writes one row per category.
func writeSummaryCSV(w io.Writer, result *schema.SummaryResult, fmtFloat func(float64) string) error {
	header := []string{
		"category",
		"repos",
		"commits",
		"active_days",
		"first_date",
		"last_date",
		"bucket",
		"buckets",
		"window_commits",
		"mean_per_bucket",
		"median_per_bucket",
		"max_per_bucket",
		"top_repo",
		"top_repo_commits",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, s := range result.Categories {
			row := []string{
				s.Category,
				strconv.Itoa(s.Repos),
				strconv.Itoa(s.Commits),
				strconv.Itoa(s.ActiveDays),
				dateOrEmpty(s.FirstDate),
				dateOrEmpty(s.LastDate),
				string(s.Width),
				strconv.Itoa(s.Buckets),
				strconv.Itoa(s.WindowCommits),
				fmtFloat(s.MeanPerBucket),
				fmtFloat(s.MedianPerBucket),
				fmtFloat(s.MaxPerBucket),
				s.TopRepo,
				strconv.Itoa(s.TopRepoCommits),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func dateOrEmpty(d *civil.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func dateOrDash(d *civil.Date) string {
	if d == nil {
		return "-"
	}
	return schema.FormatDate(*d)
}

// writeSummaryText prints all categories in a single table.
func writeSummaryText(w io.Writer, result *schema.SummaryResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	table.Header([]string{"Category", "Repos", "Commits", "Active Days", "First", "Last", "Buckets", "In Window", "Mean", "Median", "Max", "Top Repo"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, s := range result.Categories {
		top := contract.Colorize(contract.MutedColor, "-", cfg.UseColors)
		if s.TopRepo != "" {
			top = fmt.Sprintf("%s (%d)", contract.TruncateName(s.TopRepo, maxRepoNameLen), s.TopRepoCommits)
		}
		data = append(data, []string{
			contract.Colorize(contract.CategoryColor, s.Category, cfg.UseColors),
			strconv.Itoa(s.Repos),
			strconv.Itoa(s.Commits),
			strconv.Itoa(s.ActiveDays),
			dateOrDash(s.FirstDate),
			dateOrDash(s.LastDate),
			strconv.Itoa(s.Buckets),
			strconv.Itoa(s.WindowCommits),
			fmtFloat(s.MeanPerBucket),
			fmtFloat(s.MedianPerBucket),
			fmtFloat(s.MaxPerBucket),
			top,
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Summary completed in %v with %d workers. Bucket: %s, window: %s\n", duration, cfg.Workers, result.Width, formatWindow(result.Window))
	return nil
}
