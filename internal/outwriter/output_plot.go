package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintPlotArtifacts lists the charts written by the plot command.
// Parquet has no meaning for a file listing, so it falls back to text.
func PrintPlotArtifacts(artifacts []schema.PlotArtifact, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, artifacts)
		}, "Wrote JSON artifact list"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"kind", "bucket", "path"}, func(csvWriter *csv.Writer) error {
				for _, a := range artifacts {
					if err := csvWriter.Write([]string{string(a.Kind), string(a.Width), a.Path}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV artifact list"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writePlotText(plotListingFile(cfg), artifacts, cfg, duration)
	}
	return nil
}

// plotListingFile keeps a text listing out of a file meant for Parquet.
func plotListingFile(cfg *contract.Config) string {
	if cfg.Output == schema.ParquetOut {
		return ""
	}
	return cfg.OutputFile
}

func writePlotText(outputFile string, artifacts []schema.PlotArtifact, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Chart", "Bucket", "Path"})
		data := make([][]string, 0, len(artifacts))
		for _, a := range artifacts {
			data = append(data, []string{string(a.Kind), string(a.Width), a.Path})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		msg := fmt.Sprintf("🖼️  Wrote %d charts in %v", len(artifacts), duration)
		fmt.Fprintln(w, contract.Colorize(contract.HeaderColor, msg, cfg.UseColors))
		return nil
	}, "Wrote artifact list")
}
