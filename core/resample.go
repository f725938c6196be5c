package core

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/schema"
)

// Resolution of a bucket width.
//
// apply - Truncate a date to the start of its bucket
// next - Get the start of the following bucket
type resolution struct {
	apply func(civil.Date) civil.Date
	next  func(civil.Date) civil.Date
}

// firstOf builds the date for a (year, month, day) that may be out of range.
func firstOf(year int, month time.Month, day int) civil.Date {
	return civil.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func resolutionFor(width schema.BucketWidth) (resolution, error) {
	switch width {
	case schema.DailyBucket:
		return resolution{
			apply: func(d civil.Date) civil.Date { return d },
			next:  func(d civil.Date) civil.Date { return d.AddDays(1) },
		}, nil
	case schema.WeeklyBucket:
		// Weeks start on Monday
		apply := func(d civil.Date) civil.Date {
			offset := (int(d.In(time.UTC).Weekday()) + 6) % 7
			return d.AddDays(-offset)
		}
		return resolution{
			apply: apply,
			next:  func(d civil.Date) civil.Date { return apply(d).AddDays(7) },
		}, nil
	case schema.MonthlyBucket:
		apply := func(d civil.Date) civil.Date { return firstOf(d.Year, d.Month, 1) }
		return resolution{
			apply: apply,
			next:  func(d civil.Date) civil.Date { return firstOf(d.Year, d.Month+1, 1) },
		}, nil
	case schema.YearlyBucket:
		apply := func(d civil.Date) civil.Date { return firstOf(d.Year, time.January, 1) }
		return resolution{
			apply: apply,
			next:  func(d civil.Date) civil.Date { return firstOf(d.Year+1, time.January, 1) },
		}, nil
	default:
		return resolution{}, fmt.Errorf("unknown bucket width %q", width)
	}
}

// Resample sums a category table into contiguous buckets of the given width.
// Buckets run from the one holding the first date of the table to the one
// holding end; absent cells and empty buckets count as zero. Dates after end
// are dropped. A positive window keeps only the trailing window buckets. An
// invalid end falls back to the last date of the table, and a table without
// dates resamples to no buckets.
func Resample(table *schema.CategoryTable, width schema.BucketWidth, window int, end civil.Date) (*schema.ResampledTable, error) {
	res, err := resolutionFor(width)
	if err != nil {
		return nil, err
	}

	out := &schema.ResampledTable{
		Category: table.Category,
		Width:    width,
		Repos:    table.Repos(),
		Buckets:  []civil.Date{},
		Values:   make([][]int, len(table.Columns)),
	}

	first, last, ok := schema.DateSpan(table.Index)
	if !end.IsValid() {
		end = last
	}
	if !ok || end.Before(first) {
		for i := range out.Values {
			out.Values[i] = []int{}
		}
		return out, nil
	}

	endBucket := res.apply(end)
	for b := res.apply(first); !b.After(endBucket); b = res.next(b) {
		out.Buckets = append(out.Buckets, b)
	}
	if window > 0 && len(out.Buckets) > window {
		out.Buckets = out.Buckets[len(out.Buckets)-window:]
	}

	position := make(map[civil.Date]int, len(out.Buckets))
	for i, b := range out.Buckets {
		position[b] = i
	}

	for r, col := range table.Columns {
		values := make([]int, len(out.Buckets))
		for i, cell := range col.Cells {
			if !cell.Present || table.Index[i].After(end) {
				continue
			}
			if b, ok := position[res.apply(table.Index[i])]; ok {
				values[b] += cell.Count
			}
		}
		out.Values[r] = values
	}
	return out, nil
}

// ResampleAll resamples every category against the last date of the
// combined index, so all categories share one x-range end.
func ResampleAll(combined *schema.CombinedTable, width schema.BucketWidth, window int) ([]*schema.ResampledTable, error) {
	end, _ := combined.LastDate()
	tables := make([]*schema.ResampledTable, 0, len(combined.Categories))
	for _, t := range combined.Ordered() {
		r, err := Resample(t, width, window, end)
		if err != nil {
			return nil, err
		}
		tables = append(tables, r)
	}
	return tables, nil
}
