package organize

import (
	"sort"
	"strings"
)

// Report tallies how many bookmarks landed in each destination path.
type Report struct {
	Total  int
	counts map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{counts: make(map[string]int)}
}

// Count records one bookmark classified to the given path.
func (r *Report) Count(path []string) {
	r.Total++
	r.counts[strings.Join(path, " > ")]++
}

// PathCount is one reporting row.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Sorted returns rows ordered by descending count; equal counts are
// ordered by path so output is stable across runs.
func (r *Report) Sorted() []PathCount {
	rows := make([]PathCount, 0, len(r.counts))
	for p, c := range r.counts {
		rows = append(rows, PathCount{Path: p, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Path < rows[j].Path
	})
	return rows
}
