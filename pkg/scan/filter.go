// Package scan implements filesystem traversal with date-bucketed size aggregation.
package scan

import (
	"fmt"
	"io/fs"
	"regexp"
	"time"
)

// Filter decides which filesystem entries participate in aggregation.
// Exclusion patterns are tested as partial regexp matches against the full
// traversal path. An optional age cutoff rejects files whose modification
// time is further in the past than MaxAge.
type Filter struct {
	excludes []*regexp.Regexp
	maxAge   time.Duration
	now      func() time.Time
}

// NewFilter compiles the exclusion patterns and returns a filter.
// A zero maxAge disables age filtering.
func NewFilter(excludes []string, maxAge time.Duration) (*Filter, error) {
	compiled := make([]*regexp.Regexp, 0, len(excludes))
	for _, pat := range excludes {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", pat, err)
		}
		compiled = append(compiled, re)
	}
	return &Filter{
		excludes: compiled,
		maxAge:   maxAge,
		now:      time.Now,
	}, nil
}

// SetNow overrides the clock used for the age cutoff (useful for testing).
func (f *Filter) SetNow(now func() time.Time) {
	f.now = now
}

// Excluded returns true if the path matches any exclusion pattern.
func (f *Filter) Excluded(path string) bool {
	for _, re := range f.excludes {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Included reports whether the entry should participate in aggregation.
// Only regular files and directories are eligible; anything else (sockets,
// devices, unresolved symlinks) is rejected. The age cutoff applies to
// regular files only.
func (f *Filter) Included(path string, info fs.FileInfo) bool {
	if f.Excluded(path) {
		return false
	}
	mode := info.Mode()
	if !mode.IsRegular() && !mode.IsDir() {
		return false
	}
	if mode.IsRegular() && f.maxAge > 0 {
		if f.now().Sub(info.ModTime()) > f.maxAge {
			return false
		}
	}
	return true
}
