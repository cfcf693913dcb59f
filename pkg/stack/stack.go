// Package stack transforms per-root date buckets into cumulative stacked
// series ordered for layered-area plotting.
//
// For each date on the union axis, a root's value is the total size of its
// files modified on that date or later: the cost of retaining everything
// back to that date. Values are accumulated newest to oldest and carried
// forward, so every root has a value on every date row.
package stack

import (
	"sort"
	"time"

	"github.com/eunmann/du-hist/pkg/scan"
)

// Row is one emitted date row: cumulative values per root, ordered as
// Result.Roots.
type Row struct {
	Date   string
	Values []int64
}

// Result is the stacked dataset ready for emission.
type Result struct {
	// Roots in display order: descending by total size, ties broken by
	// ascending path string.
	Roots []string

	// Rows in ascending date order.
	Rows []Row

	// Totals carries the per-root byte totals for series titles.
	Totals map[string]int64

	// Placeholder is true when no root produced any data; Rows then holds
	// a single flat-zero row so the plot still renders.
	Placeholder bool
}

// Stack builds the cumulative stacked dataset from per-root buckets and
// totals.
func Stack(buckets map[string]scan.DateBuckets, totals map[string]int64) Result {
	roots := orderRoots(buckets, totals)
	dates := dateAxis(buckets)

	if len(roots) == 0 || len(dates) == 0 {
		return Result{
			Totals: totals,
			Rows: []Row{{
				Date:   time.Now().Format(scan.DateLayout),
				Values: []int64{0},
			}},
			Placeholder: true,
		}
	}

	// Walk the axis newest to oldest, accumulating per root. Every root
	// gets its current accumulator value on every date, whether or not it
	// had activity that day.
	acc := make([]int64, len(roots))
	rows := make([]Row, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		date := dates[i]
		values := make([]int64, len(roots))
		for j, root := range roots {
			if size, ok := buckets[root][date]; ok {
				acc[j] += size
			}
			values[j] = acc[j]
		}
		rows = append(rows, Row{Date: date, Values: values})
	}

	// Emission order is ascending date.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return Result{Roots: roots, Rows: rows, Totals: totals}
}

// orderRoots sorts roots descending by total size, ties ascending by path.
func orderRoots(buckets map[string]scan.DateBuckets, totals map[string]int64) []string {
	roots := make([]string, 0, len(buckets))
	for root := range buckets {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		if totals[roots[i]] != totals[roots[j]] {
			return totals[roots[i]] > totals[roots[j]]
		}
		return roots[i] < roots[j]
	})
	return roots
}

// dateAxis returns the sorted union of all bucket dates. The YYYY-MM-DD form
// sorts chronologically as plain strings.
func dateAxis(buckets map[string]scan.DateBuckets) []string {
	seen := make(map[string]struct{})
	for _, b := range buckets {
		for date := range b {
			seen[date] = struct{}{}
		}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
