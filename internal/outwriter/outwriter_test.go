package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) civil.Date {
	return civil.Date{Year: 2020, Month: time.January, Day: d}
}

func ptr(d civil.Date) *civil.Date {
	return &d
}

// sampleTable is work/{A,B}: A has 2 commits on the 1st and 1 on the 3rd, B has 1 on the 2nd.
func sampleTable() *schema.CombinedTable {
	work := &schema.CategoryTable{
		Category: "work",
		Index:    []civil.Date{day(1), day(2), day(3)},
		Columns: []schema.Column{
			{Repo: "A", Cells: []schema.Cell{schema.NewCell(2), schema.AbsentCell, schema.NewCell(1)}},
			{Repo: "B", Cells: []schema.Cell{schema.AbsentCell, schema.NewCell(1), schema.AbsentCell}},
		},
	}
	return &schema.CombinedTable{
		Categories: []string{"work"},
		Tables:     map[string]*schema.CategoryTable{"work": work},
	}
}

func sampleResample() *schema.ResampleResult {
	return &schema.ResampleResult{
		Width:  schema.MonthlyBucket,
		Window: 0,
		Tables: []*schema.ResampledTable{
			{
				Category: "work",
				Width:    schema.MonthlyBucket,
				Buckets:  []civil.Date{day(1), {Year: 2020, Month: time.February, Day: 1}},
				Repos:    []string{"A", "B"},
				Values:   [][]int{{3, 0}, {1, 2}},
			},
			{
				Category: "empty",
				Width:    schema.MonthlyBucket,
				Buckets:  []civil.Date{},
				Repos:    []string{},
				Values:   [][]int{},
			},
		},
	}
}

func sampleSummary() *schema.SummaryResult {
	return &schema.SummaryResult{
		Width: schema.MonthlyBucket,
		Categories: []schema.CategorySummary{
			{
				Category: "work", Repos: 2, Commits: 4, ActiveDays: 3,
				FirstDate: ptr(day(1)), LastDate: ptr(day(3)), Width: schema.MonthlyBucket,
				Buckets: 1, WindowCommits: 4, MeanPerBucket: 4, MedianPerBucket: 4, MaxPerBucket: 4,
				TopRepo: "A", TopRepoCommits: 3,
			},
			{Category: "empty", Width: schema.MonthlyBucket},
		},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Width:     200,
		Workers:   2,
		Reader:    schema.GitReader,
		Precision: 1,
	}
}

func TestGetMaxTableColumns(t *testing.T) {
	tests := []struct {
		name  string
		width int
		extra int
		want  int
	}{
		{"wide", 200, 0, (200 - leadColumnWidth) / repoColumnWidth},
		{"total column", 200, 1, (200 - leadColumnWidth - repoColumnWidth) / repoColumnWidth},
		{"too narrow", 20, 0, minRepoColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMaxTableColumns(&contract.Config{Width: tt.width}, tt.extra))
		})
	}
}

func TestWriteCommitTableCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCommitTableCSV(&buf, sampleTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "category,repository,date,commits", lines[0])
	assert.Equal(t, "work,A,2020-01-01,2", lines[1])
	assert.Equal(t, "work,A,2020-01-02,", lines[2], "absent cells stay empty")
	assert.Equal(t, "work,B,2020-01-02,1", lines[5])
}

func TestWriteCommitTableText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCommitTableText(&buf, sampleTable(), textConfig(), time.Second))

	out := buf.String()
	assert.Contains(t, out, "📁 work (2 repos, 4 commits)")
	assert.Contains(t, out, "2020-01-02")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "Reader: git")
	assert.NotContains(t, out, "more repositories hidden")
}

func TestWriteCommitTableTextHidesColumns(t *testing.T) {
	cfg := textConfig()
	cfg.Width = 20

	var buf bytes.Buffer
	require.NoError(t, writeCommitTableText(&buf, sampleTable(), cfg, time.Second))
	assert.Contains(t, buf.String(), "1 more repositories hidden")
}

func TestWriteResampleOutputs(t *testing.T) {
	var csvBuf bytes.Buffer
	require.NoError(t, writeResampleCSV(&csvBuf, sampleResample()))
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "category,repository,bucket,bucket_start,commits", lines[0])
	assert.Equal(t, "work,A,monthly,2020-01-01,3", lines[1])
	assert.Equal(t, "work,B,monthly,2020-02-01,2", lines[4])

	var textBuf bytes.Buffer
	require.NoError(t, writeResampleText(&textBuf, sampleResample(), textConfig(), time.Second))
	out := textBuf.String()
	assert.Contains(t, out, "2020-02")
	assert.Contains(t, out, "📁 empty")
	assert.Contains(t, out, "No commits")
	assert.Contains(t, out, "window: all")
}

func TestWriteSummaryOutputs(t *testing.T) {
	fmtFloat := createFormatter(1)

	var csvBuf bytes.Buffer
	require.NoError(t, writeSummaryCSV(&csvBuf, sampleSummary(), fmtFloat))
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "category,repos,commits,active_days"))
	assert.Equal(t, "work,2,4,3,2020-01-01,2020-01-03,monthly,1,4,4.0,4.0,4.0,A,3", lines[1])
	assert.Equal(t, "empty,0,0,0,,,monthly,0,0,0.0,0.0,0.0,,0", lines[2])

	var textBuf bytes.Buffer
	require.NoError(t, writeSummaryText(&textBuf, sampleSummary(), textConfig(), fmtFloat, time.Second))
	out := textBuf.String()
	assert.Contains(t, out, "A (3)")
	assert.Contains(t, out, "2020-01-03")
	assert.Contains(t, out, "Bucket: monthly")
}

func TestWriteSummaryJSONNullDates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleSummary()))

	var decoded struct {
		Categories []map[string]any `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Categories, 2)
	assert.Equal(t, "2020-01-01", decoded.Categories[0]["first_date"])
	assert.Equal(t, "2020-01-03", decoded.Categories[0]["last_date"])
	assert.Nil(t, decoded.Categories[1]["first_date"], "a category without commits has no first date")
	assert.Nil(t, decoded.Categories[1]["last_date"])
	assert.NotContains(t, buf.String(), "0000-00-00")
}

func TestPrintToFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		output schema.OutputMode
		print  func(cfg *contract.Config) error
		check  func(t *testing.T, path string)
	}{
		{
			name:   "table json",
			output: schema.JSONOut,
			print:  func(cfg *contract.Config) error { return PrintCommitTable(sampleTable(), cfg, time.Second) },
			check: func(t *testing.T, path string) {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
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
				require.NoError(t, json.Unmarshal(data, &decoded))
				assert.Equal(t, []string{"2020-01-01", "2020-01-02", "2020-01-03"}, decoded.Index)
				require.Len(t, decoded.Categories, 1)
				assert.Nil(t, decoded.Categories[0].Columns[0].Counts[1])
			},
		},
		{
			name:   "resample parquet",
			output: schema.ParquetOut,
			print:  func(cfg *contract.Config) error { return PrintResampleResults(sampleResample(), cfg, time.Second) },
			check: func(t *testing.T, path string) {
				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.Greater(t, info.Size(), int64(0))
			},
		},
		{
			name:   "summary csv",
			output: schema.CSVOut,
			print:  func(cfg *contract.Config) error { return PrintSummaryResults(sampleSummary(), cfg, time.Second) },
			check: func(t *testing.T, path string) {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Contains(t, string(data), "work,2,4,3")
			},
		},
		{
			name:   "table parquet",
			output: schema.ParquetOut,
			print:  func(cfg *contract.Config) error { return PrintCommitTable(sampleTable(), cfg, time.Second) },
			check: func(t *testing.T, path string) {
				_, err := os.Stat(path)
				require.NoError(t, err)
			},
		},
		{
			name:   "plot json",
			output: schema.JSONOut,
			print: func(cfg *contract.Config) error {
				artifacts := []schema.PlotArtifact{{Kind: schema.AreaChart, Width: schema.MonthlyBucket, Path: "gitplots_area_monthly.png"}}
				return PrintPlotArtifacts(artifacts, cfg, time.Second)
			},
			check: func(t *testing.T, path string) {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Contains(t, string(data), `"kind": "area"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := textConfig()
			cfg.Output = tt.output
			cfg.OutputFile = filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_"))
			require.NoError(t, tt.print(cfg))
			tt.check(t, cfg.OutputFile)
		})
	}
}

func TestPlotListingFile(t *testing.T) {
	cfg := textConfig()
	cfg.OutputFile = "out.parquet"
	cfg.Output = schema.ParquetOut
	assert.Equal(t, "", plotListingFile(cfg))

	cfg.Output = schema.TextOut
	assert.Equal(t, "out.parquet", plotListingFile(cfg))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "-", formatCell(schema.AbsentCell, false))
	assert.Equal(t, "0", formatCell(schema.NewCell(0), false))
	assert.Equal(t, "5", formatCell(schema.NewCell(5), false))
	assert.Equal(t, "0", formatCount(0, false))
	assert.Equal(t, "all", formatWindow(0))
	assert.Equal(t, "12", formatWindow(12))
}
