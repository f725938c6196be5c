package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

// at returns the epoch seconds of a UTC wall-clock time.
func at(y int, m time.Month, d, hour int) int64 {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC).Unix()
}

func series(name string, counts map[civil.Date]int) schema.RepositorySeries {
	return schema.RepositorySeries{Name: name, Counts: counts}
}

// scenarioSeries is repository A with 2 commits on 2020-01-01 and 1 on
// 2020-01-03, and repository B with 1 commit on 2020-01-02.
func scenarioSeries() []schema.RepositorySeries {
	return []schema.RepositorySeries{
		series("A", map[civil.Date]int{date(2020, 1, 1): 2, date(2020, 1, 3): 1}),
		series("B", map[civil.Date]int{date(2020, 1, 2): 1}),
	}
}

// makeLayout creates root/category/repo directories and returns the root.
func makeLayout(t *testing.T, layout map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for category, repos := range layout {
		require.NoError(t, os.MkdirAll(filepath.Join(root, category), 0o755))
		for _, repo := range repos {
			require.NoError(t, os.MkdirAll(filepath.Join(root, category, repo), 0o755))
		}
	}
	return root
}

// testConfig returns a validated-looking config rooted at root.
func testConfig(root string) *contract.Config {
	return &contract.Config{
		RootPath:    root,
		Reader:      schema.GitReader,
		Location:    time.UTC,
		Workers:     4,
		Output:      schema.JSONOut,
		Precision:   1,
		Buckets:     []schema.BucketWidth{schema.MonthlyBucket},
		Bucket:      schema.MonthlyBucket,
		Window:      contract.DefaultWindow,
		Prefix:      contract.DefaultPrefix,
		OutputDir:   filepath.Join(root, "out"),
		PanelWidth:  contract.DefaultPanelWidth,
		PanelHeight: contract.DefaultPanelHeight,
		Palettes:    schema.DefaultPalettes,
	}
}
