// Package schema has models and constants for all parts of gitplots.
package schema

import (
	"encoding/json"
	"slices"

	"cloud.google.com/go/civil"
)

// Cell is one (repository, date) entry of an aligned table.
// An absent cell means the repository had no commits on that date; it is
// kept distinct from a zero count until resampling sums the table.
type Cell struct {
	Count   int
	Present bool
}

// AbsentCell is the empty cell produced by outer-join alignment.
var AbsentCell = Cell{}

// NewCell returns a present cell holding n commits.
func NewCell(n int) Cell {
	return Cell{Count: n, Present: true}
}

// ValueOrZero returns the count, treating an absent cell as zero.
func (c Cell) ValueOrZero() int {
	if !c.Present {
		return 0
	}
	return c.Count
}

// MarshalJSON encodes an absent cell as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Present {
		return []byte("null"), nil
	}
	return json.Marshal(c.Count)
}

// UnmarshalJSON decodes null as an absent cell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = AbsentCell
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = NewCell(n)
	return nil
}

// DateCount pairs a calendar date with its commit count (always >= 1).
type DateCount struct {
	Date  civil.Date `json:"date"`
	Count int        `json:"count"`
}

// RepositorySeries maps every date with at least one commit to its count
// for a single repository. Dates without commits are never stored.
type RepositorySeries struct {
	Name   string             `json:"name"`
	Counts map[civil.Date]int `json:"counts"`
}

// Dates returns the series dates in ascending order.
func (s RepositorySeries) Dates() []civil.Date {
	dates := make([]civil.Date, 0, len(s.Counts))
	for d := range s.Counts {
		dates = append(dates, d)
	}
	SortDates(dates)
	return dates
}

// DateCounts returns the series as ascending (date, count) pairs.
func (s RepositorySeries) DateCounts() []DateCount {
	dates := s.Dates()
	out := make([]DateCount, len(dates))
	for i, d := range dates {
		out[i] = DateCount{Date: d, Count: s.Counts[d]}
	}
	return out
}

// Total returns the number of commits in the series.
func (s RepositorySeries) Total() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// Column holds one repository's cells aligned to a CategoryTable index.
type Column struct {
	Repo  string `json:"repository"`
	Cells []Cell `json:"counts"`
}

// CategoryTable aligns the series of every repository in a category on the
// union of their dates. Columns are sorted by repository name.
type CategoryTable struct {
	Category string       `json:"category"`
	Index    []civil.Date `json:"index"`
	Columns  []Column     `json:"columns"`
}

// Repos returns the repository names in column order.
func (t *CategoryTable) Repos() []string {
	repos := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		repos[i] = c.Repo
	}
	return repos
}

// Total sums every present cell of the table.
func (t *CategoryTable) Total() int {
	total := 0
	for _, c := range t.Columns {
		for _, cell := range c.Cells {
			total += cell.ValueOrZero()
		}
	}
	return total
}

// CombinedTable keys category tables by category name. Each category keeps
// its own date alignment; Index gives the union across categories.
type CombinedTable struct {
	Categories []string                  `json:"-"`
	Tables     map[string]*CategoryTable `json:"-"`
}

// Ordered returns the category tables in display order.
func (c *CombinedTable) Ordered() []*CategoryTable {
	out := make([]*CategoryTable, 0, len(c.Categories))
	for _, name := range c.Categories {
		out = append(out, c.Tables[name])
	}
	return out
}

// Index returns the ascending union of all category indexes.
func (c *CombinedTable) Index() []civil.Date {
	var all []civil.Date
	for _, t := range c.Tables {
		all = append(all, t.Index...)
	}
	SortDates(all)
	return slices.Compact(all)
}

// LastDate returns the latest date across all categories.
func (c *CombinedTable) LastDate() (civil.Date, bool) {
	idx := c.Index()
	if len(idx) == 0 {
		return civil.Date{}, false
	}
	return idx[len(idx)-1], true
}

// MarshalJSON encodes the categories in display order.
func (c *CombinedTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index      []civil.Date     `json:"index"`
		Categories []*CategoryTable `json:"categories"`
	}{
		Index:      c.Index(),
		Categories: c.Ordered(),
	})
}
