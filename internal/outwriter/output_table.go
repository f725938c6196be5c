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

// PrintCommitTable outputs the combined daily table, dispatching based on the output format configured.
func PrintCommitTable(table *schema.CombinedTable, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, table)
		}, "Wrote JSON table"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCommitTableCSV(w, table)
		}, "Wrote CSV table"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteCommitCountsParquet(parquet.ConvertCombinedTable(table), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		parquetMessage("table", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCommitTableText(w, table, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeCommitTableCSV writes one row per (category, repository, date) of
// each category's index. Absent cells have an empty commits field.
func writeCommitTableCSV(w io.Writer, table *schema.CombinedTable) error {
	header := []string{"category", "repository", "date", "commits"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, t := range table.Ordered() {
			for _, col := range t.Columns {
				for i, d := range t.Index {
					commits := ""
					if cell := col.Cells[i]; cell.Present {
						commits = strconv.Itoa(cell.Count)
					}
					if err := csvWriter.Write([]string{t.Category, col.Repo, d.String(), commits}); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// writeCommitTableText prints one table per category with dates as rows
// and repositories as columns.
func writeCommitTableText(w io.Writer, table *schema.CombinedTable, cfg *contract.Config, duration time.Duration) error {
	maxCols := GetMaxTableColumns(cfg, 0)
	for _, t := range table.Ordered() {
		title := fmt.Sprintf("📁 %s (%d repos, %d commits)", t.Category, len(t.Columns), t.Total())
		fmt.Fprintln(w, contract.Colorize(contract.CategoryColor, title, cfg.UseColors))

		shown := t.Columns[:min(len(t.Columns), maxCols)]
		tbl := tablewriter.NewWriter(w)

		// 1. Define Headers
		headers := []string{"Date"}
		for _, col := range shown {
			headers = append(headers, contract.TruncateName(col.Repo, maxRepoNameLen))
		}
		tbl.Header(headers)

		// 2. Configure Alignment
		tbl.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		// 3. Populate Rows
		data := make([][]string, 0, len(t.Index))
		for i, d := range t.Index {
			row := []string{d.String()}
			for _, col := range shown {
				row = append(row, formatCell(col.Cells[i], cfg.UseColors))
			}
			data = append(data, row)
		}

		// 4. Render the table
		if err := tbl.Bulk(data); err != nil {
			return err
		}
		if err := tbl.Render(); err != nil {
			return err
		}
		if hidden := len(t.Columns) - len(shown); hidden > 0 {
			fmt.Fprintln(w, hiddenNote(hidden))
		}
	}
	fmt.Fprintf(w, "Table built in %v with %d workers. Reader: %s\n", duration, cfg.Workers, cfg.Reader)
	return nil
}

// formatCell renders an absent cell as "-" so it never reads as zero commits.
func formatCell(c schema.Cell, useColors bool) string {
	if !c.Present {
		return contract.Colorize(contract.MutedColor, "-", useColors)
	}
	return contract.Colorize(contract.CountColor, strconv.Itoa(c.Count), useColors)
}
