package schema

import "cloud.google.com/go/civil"

// CategorySummary has high-level activity numbers for one category.
type CategorySummary struct {
	Category        string      `json:"category"`
	Repos           int         `json:"repos"`
	Commits         int         `json:"commits"`
	ActiveDays      int         `json:"active_days"`
	FirstDate       *civil.Date `json:"first_date"` // nil when the category has no commits
	LastDate        *civil.Date `json:"last_date"`
	Width           BucketWidth `json:"bucket"`
	Buckets         int         `json:"buckets"`          // Buckets inside the window
	WindowCommits   int         `json:"window_commits"`   // Commits inside the window
	MeanPerBucket   float64     `json:"mean_per_bucket"`  // Mean commits per bucket in the window
	MedianPerBucket float64     `json:"median_per_bucket"`
	MaxPerBucket    float64     `json:"max_per_bucket"`
	TopRepo         string      `json:"top_repo"` // Most active repository in the window
	TopRepoCommits  int         `json:"top_repo_commits"`
}

// SummaryResult holds the summary of every category.
type SummaryResult struct {
	Width      BucketWidth       `json:"bucket"`
	Window     int               `json:"window"`
	Categories []CategorySummary `json:"categories"`
}

// ResampleResult holds resampled tables for every category at one width.
type ResampleResult struct {
	Width  BucketWidth       `json:"bucket"`
	Window int               `json:"window"`
	Tables []*ResampledTable `json:"tables"`
}

// PlotArtifact describes one chart written to disk.
type PlotArtifact struct {
	Kind  ChartKind   `json:"kind"`
	Width BucketWidth `json:"bucket"`
	Path  string      `json:"path"`
}
