package core

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer writes the chart kind and category count instead of a PNG.
type fakeRenderer struct {
	calls   []schema.ChartKind
	failPie bool
}

var _ contract.ChartRenderer = &fakeRenderer{} // Compile-time check

func (f *fakeRenderer) RenderArea(w io.Writer, tables []*schema.ResampledTable) error {
	f.calls = append(f.calls, schema.AreaChart)
	_, err := io.WriteString(w, "area")
	return err
}

func (f *fakeRenderer) RenderPie(w io.Writer, tables []*schema.ResampledTable) error {
	f.calls = append(f.calls, schema.PieChart)
	if f.failPie {
		return &contract.RenderError{Chart: schema.PieChart, Err: errors.New("no data to plot")}
	}
	_, err := io.WriteString(w, "pie")
	return err
}

// scenarioRoot lays out the A/B scenario under root/work.
func scenarioRoot(t *testing.T) (string, contract.StaticLogReader) {
	t.Helper()
	root := makeLayout(t, map[string][]string{"work": {"A", "B"}})
	reader := contract.StaticLogReader{
		filepath.Join(root, "work", "A"): {at(2020, 1, 1, 9), at(2020, 1, 1, 17), at(2020, 1, 3, 12)},
		filepath.Join(root, "work", "B"): {at(2020, 1, 2, 8)},
	}
	return root, reader
}

func TestPlotCharts(t *testing.T) {
	root, reader := scenarioRoot(t)
	cfg := testConfig(root)
	cfg.Buckets = []schema.BucketWidth{schema.MonthlyBucket, schema.DailyBucket}

	renderer := &fakeRenderer{}
	artifacts, err := PlotCharts(WithSuppressHeader(context.Background()), cfg, reader, renderer)
	require.NoError(t, err)

	require.Len(t, artifacts, 4)
	assert.Equal(t, []schema.ChartKind{schema.AreaChart, schema.PieChart, schema.AreaChart, schema.PieChart}, renderer.calls)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "gitplots_area_monthly.png"), artifacts[0].Path)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "gitplots_pie_daily.png"), artifacts[3].Path)

	data, err := os.ReadFile(artifacts[1].Path)
	require.NoError(t, err)
	assert.Equal(t, "pie", string(data))
}

func TestPlotChartsRenderFailure(t *testing.T) {
	root, reader := scenarioRoot(t)
	cfg := testConfig(root)

	_, err := PlotCharts(WithSuppressHeader(context.Background()), cfg, reader, &fakeRenderer{failPie: true})
	var renderErr *contract.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, schema.PieChart, renderErr.Chart)

	_, statErr := os.Stat(cfg.ArtifactPath(schema.PieChart, schema.MonthlyBucket))
	assert.True(t, os.IsNotExist(statErr), "failed artifact is removed")
}

func TestPlotChartsExtractionFailure(t *testing.T) {
	root := makeLayout(t, map[string][]string{"work": {"A"}})
	cfg := testConfig(root)
	renderer := &fakeRenderer{}

	_, err := PlotCharts(WithSuppressHeader(context.Background()), cfg, contract.StaticLogReader{}, renderer)
	var extractErr *contract.ExtractionError
	assert.ErrorAs(t, err, &extractErr)
	assert.Empty(t, renderer.calls)
}

func TestExecuteTableJSON(t *testing.T) {
	root, reader := scenarioRoot(t)
	cfg := testConfig(root)
	cfg.OutputFile = filepath.Join(t.TempDir(), "table.json")

	require.NoError(t, ExecuteTable(context.Background(), cfg, reader))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var decoded struct {
		Categories []schema.CategoryTable `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Categories, 1)
	col := decoded.Categories[0].Columns[0]
	assert.Equal(t, "A", col.Repo)
	assert.Equal(t, []schema.Cell{schema.NewCell(2), schema.AbsentCell, schema.NewCell(1)}, col.Cells)
}

func TestGetResampleResults(t *testing.T) {
	root, reader := scenarioRoot(t)
	cfg := testConfig(root)
	cfg.Bucket = schema.DailyBucket

	result, err := GetResampleResults(WithSuppressHeader(context.Background()), cfg, reader)
	require.NoError(t, err)
	assert.Equal(t, schema.DailyBucket, result.Width)
	require.Len(t, result.Tables, 1)
	assert.Equal(t, []int{2, 1, 1}, result.Tables[0].Totals())
}

func TestGetSummaryResults(t *testing.T) {
	root, reader := scenarioRoot(t)
	cfg := testConfig(root)

	result, err := GetSummaryResults(WithSuppressHeader(context.Background()), cfg, reader)
	require.NoError(t, err)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, 4, result.Categories[0].Commits)
	assert.Equal(t, "A", result.Categories[0].TopRepo)
}

func TestExecutorsWriteOutput(t *testing.T) {
	root, reader := scenarioRoot(t)
	executors := map[string]ExecutorFunc{
		"resample": ExecuteResample,
		"summary":  ExecuteSummary,
	}
	for name, run := range executors {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(root)
			cfg.Output = schema.CSVOut
			cfg.OutputFile = filepath.Join(t.TempDir(), name+".csv")
			require.NoError(t, run(context.Background(), cfg, reader))

			data, err := os.ReadFile(cfg.OutputFile)
			require.NoError(t, err)
			assert.Contains(t, string(data), "work")
		})
	}
}
