package schema

import "cloud.google.com/go/civil"

// ResampledTable holds bucket sums for one category. Buckets are the start
// dates of contiguous periods of the given width; Values[r][b] is the number
// of commits of Repos[r] inside Buckets[b]. Empty buckets are zero.
type ResampledTable struct {
	Category string       `json:"category"`
	Width    BucketWidth  `json:"bucket"`
	Buckets  []civil.Date `json:"buckets"`
	Repos    []string     `json:"repositories"`
	Values   [][]int      `json:"values"`
}

// Totals sums all repositories for each bucket.
func (r *ResampledTable) Totals() []int {
	totals := make([]int, len(r.Buckets))
	for _, row := range r.Values {
		for b, v := range row {
			totals[b] += v
		}
	}
	return totals
}

// RepoTotals sums every bucket for each repository, in Repos order.
func (r *ResampledTable) RepoTotals() []int {
	totals := make([]int, len(r.Repos))
	for i, row := range r.Values {
		for _, v := range row {
			totals[i] += v
		}
	}
	return totals
}

// Total returns the number of commits inside the resampled window.
func (r *ResampledTable) Total() int {
	total := 0
	for _, v := range r.RepoTotals() {
		total += v
	}
	return total
}

// Empty reports whether the table has no buckets or no repositories.
func (r *ResampledTable) Empty() bool {
	return len(r.Buckets) == 0 || len(r.Repos) == 0
}
