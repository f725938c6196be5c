// Package agg has aggregation logic for commit timestamps.
package agg

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/schema"
)

// ParseTimestamps parses `git log --format=%at` output into epoch seconds.
// Blank lines are skipped and any other malformed line is an error.
func ParseTimestamps(out []byte) ([]int64, error) {
	lines := strings.Split(string(out), "\n")
	timestamps := make([]int64, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue // Skip blank lines
		}
		ts, err := strconv.ParseInt(l, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timestamp %q", i+1, l)
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps, nil
}

// DateOf returns the calendar date of a timestamp in the given location.
// A nil location means UTC.
func DateOf(ts int64, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(time.Unix(ts, 0).In(loc))
}

// CountByDate counts timestamps per calendar date. The result only holds
// dates with at least one commit; the sum of its values equals len(timestamps).
func CountByDate(timestamps []int64, loc *time.Location) map[civil.Date]int {
	counts := make(map[civil.Date]int)
	for _, ts := range timestamps {
		counts[DateOf(ts, loc)]++
	}
	return counts
}

// BuildSeries aggregates the timestamps of one repository into its series.
func BuildSeries(name string, timestamps []int64, loc *time.Location) schema.RepositorySeries {
	return schema.RepositorySeries{
		Name:   name,
		Counts: CountByDate(timestamps, loc),
	}
}
