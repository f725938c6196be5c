package core

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/core/agg"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BuildCategoryTable outer-joins repository series on the union of their
// dates. The index is ascending, columns are sorted by repository name and a
// date a repository has no commits on stays absent.
func BuildCategoryTable(category string, series []schema.RepositorySeries) *schema.CategoryTable {
	sorted := slices.Clone(series)
	slices.SortFunc(sorted, func(a, b schema.RepositorySeries) int {
		return strings.Compare(a.Name, b.Name)
	})

	seen := make(map[civil.Date]struct{})
	for _, s := range sorted {
		for d := range s.Counts {
			seen[d] = struct{}{}
		}
	}
	index := make([]civil.Date, 0, len(seen))
	for d := range seen {
		index = append(index, d)
	}
	schema.SortDates(index)

	pos := make(map[civil.Date]int, len(index))
	for i, d := range index {
		pos[d] = i
	}
	columns := make([]schema.Column, len(sorted))
	for i, s := range sorted {
		cells := make([]schema.Cell, len(index))
		for _, dc := range s.DateCounts() {
			cells[pos[dc.Date]] = schema.NewCell(dc.Count)
		}
		columns[i] = schema.Column{Repo: s.Name, Cells: cells}
	}

	return &schema.CategoryTable{
		Category: category,
		Index:    index,
		Columns:  columns,
	}
}

// MergeCategories keys category tables by name. Argument order only decides
// display order; a repeated category keeps its first position and last table.
func MergeCategories(tables ...*schema.CategoryTable) *schema.CombinedTable {
	combined := &schema.CombinedTable{
		Tables: make(map[string]*schema.CategoryTable, len(tables)),
	}
	for _, t := range tables {
		if _, ok := combined.Tables[t.Category]; !ok {
			combined.Categories = append(combined.Categories, t.Category)
		}
		combined.Tables[t.Category] = t
	}
	return combined
}

// extractionJob is one repository to read.
type extractionJob struct {
	category string
	repo     string
	path     string
}

// planExtraction walks root -> categories -> repositories.
func planExtraction(cfg *contract.Config) ([]string, []extractionJob, error) {
	categories, err := ListCategories(cfg.RootPath, cfg.Categories)
	if err != nil {
		return nil, nil, err
	}
	var jobs []extractionJob
	for _, category := range categories {
		dir := filepath.Join(cfg.RootPath, category)
		repos, skipped, err := ListRepositories(dir, cfg.IgnoreFiles)
		if err != nil {
			return nil, nil, err
		}
		for _, name := range skipped {
			contract.LogWarn("skipping file", &contract.StructureError{Path: filepath.Join(dir, name), Reason: "not a repository"})
		}
		for _, repo := range repos {
			jobs = append(jobs, extractionJob{category: category, repo: repo, path: filepath.Join(dir, repo)})
		}
	}
	return categories, jobs, nil
}

// BuildCombinedTable reads every repository under the configured root and
// assembles the combined table. Reads run concurrently up to cfg.Workers;
// the first failure cancels the rest and no partial table is returned.
func BuildCombinedTable(ctx context.Context, cfg *contract.Config, reader contract.LogReader) (*schema.CombinedTable, error) {
	logger := loggerFrom(ctx)

	categories, jobs, err := planExtraction(cfg)
	if err != nil {
		return nil, err
	}

	results := make([]schema.RepositorySeries, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, job := range jobs {
		g.Go(func() error {
			ts, err := reader.ReadTimestamps(gctx, job.path)
			if err != nil {
				var extractErr *contract.ExtractionError
				if !errors.As(err, &extractErr) {
					err = &contract.ExtractionError{Path: job.path, Err: err}
				}
				return err
			}
			results[i] = agg.BuildSeries(job.repo, ts, cfg.Location)
			logger.WithFields(logrus.Fields{
				"category": job.category,
				"repo":     job.repo,
				"commits":  len(ts),
			}).Debug("read repository")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCategory := make(map[string][]schema.RepositorySeries, len(categories))
	for i, job := range jobs {
		byCategory[job.category] = append(byCategory[job.category], results[i])
	}
	tables := make([]*schema.CategoryTable, len(categories))
	for i, category := range categories {
		tables[i] = BuildCategoryTable(category, byCategory[category])
		logger.WithFields(logrus.Fields{
			"category": category,
			"repos":    len(tables[i].Columns),
			"dates":    len(tables[i].Index),
		}).Debug("built category table")
	}
	return MergeCategories(tables...), nil
}
