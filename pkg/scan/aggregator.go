package scan

import "sort"

// DateBuckets maps a calendar date (local time, YYYY-MM-DD) to the total
// size in bytes of files last modified on that date.
type DateBuckets map[string]int64

// Aggregator owns the per-root date buckets and running totals built during
// traversal. It is passed by reference into Walker.Traverse; nothing else
// writes to it. Totals exist only to rank roots in the final report.
type Aggregator struct {
	buckets map[string]DateBuckets
	totals  map[string]int64
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		buckets: make(map[string]DateBuckets),
		totals:  make(map[string]int64),
	}
}

// Touch registers a root so it appears in the output even if traversal
// finds no files under it.
func (a *Aggregator) Touch(root string) {
	if _, ok := a.buckets[root]; !ok {
		a.buckets[root] = make(DateBuckets)
		a.totals[root] = 0
	}
}

// Add accumulates size bytes into the root's bucket for date and into the
// root's running total.
func (a *Aggregator) Add(root, date string, size int64) {
	a.Touch(root)
	a.buckets[root][date] += size
	a.totals[root] += size
}

// Buckets returns the per-root date buckets.
func (a *Aggregator) Buckets() map[string]DateBuckets {
	return a.buckets
}

// Totals returns the per-root byte totals.
func (a *Aggregator) Totals() map[string]int64 {
	return a.totals
}

// Roots returns the registered roots in lexical order.
func (a *Aggregator) Roots() []string {
	roots := make([]string, 0, len(a.buckets))
	for root := range a.buckets {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}
