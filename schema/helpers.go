package schema

import (
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// CompareDates orders two calendar dates, returning -1, 0 or +1.
func CompareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// SortDates sorts dates in place in ascending order.
func SortDates(dates []civil.Date) {
	slices.SortFunc(dates, CompareDates)
}

// DateSpan returns the first and last date of an ascending index.
func DateSpan(index []civil.Date) (first, last civil.Date, ok bool) {
	if len(index) == 0 {
		return civil.Date{}, civil.Date{}, false
	}
	return index[0], index[len(index)-1], true
}

// FormatDate renders a date, or "-" for the zero value.
func FormatDate(d civil.Date) string {
	if !d.IsValid() {
		return "-"
	}
	return d.String()
}

// Layout returns the time layout used to label buckets of this width.
func (w BucketWidth) Layout() string {
	switch w {
	case MonthlyBucket:
		return "2006-01"
	case YearlyBucket:
		return "2006"
	default:
		return time.DateOnly
	}
}

// FormatBucket labels a bucket start, e.g. "2020-03" for a monthly bucket.
func FormatBucket(w BucketWidth, start civil.Date) string {
	if !start.IsValid() {
		return "-"
	}
	return start.In(time.UTC).Format(w.Layout())
}

// ParseList splits a comma-separated value, trimming blanks and dropping empties.
func ParseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
