// Package report holds the pure aggregation logic behind the list and chart
// views: page slicing, recency ordering, and group-by-count reduction.
package report

import "sort"

// DefaultPageSize matches the fixed row count of the list views.
const DefaultPageSize = 10

// Pages returns the number of pages needed for n rows at the given page size:
// ceil(n/size). Zero rows yield zero pages.
func Pages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-based page'th slice of rows. Pages are disjoint and
// preserve the relative order of rows. An out-of-range page yields an empty
// slice.
func Paginate[T any](rows []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// GroupCount reduces rows into counts keyed by the grouping field (owner,
// host, source, ...). This is the chart input of the report views.
func GroupCount[T any](rows []T, key func(T) string) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[key(row)]++
	}
	return counts
}

// SortByRecency orders rows descending by the given recency key so the most
// recent record comes first. The sort is stable: rows with equal keys keep
// their relative order.
func SortByRecency[T any](rows []T, key func(T) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return key(rows[i]) > key(rows[j])
	})
}
