// Package stats computes descriptive statistics over a filtered trip dataset.
//
// Every aggregation reads the dataset without modifying it and returns a plain
// result value; formatting is left to the caller. Aggregations require a
// non-empty dataset: callers are expected to check Dataset.Empty first, and
// ErrEmptyDataset is returned otherwise.
//
// Modes break ties toward the smallest value in natural order so results are
// deterministic regardless of record order.
package stats

import (
	"cmp"
	"errors"
	"slices"
)

// ErrEmptyDataset is returned when an aggregation is invoked on no trips.
var ErrEmptyDataset = errors.New("dataset has no trips")

// Count is one entry of a frequency table.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Mode returns the most frequent value of values. Ties go to the smallest value.
// ok is false when values is empty.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	if len(values) == 0 {
		return mode, false
	}

	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, true
}

// ValueCounts tallies values in descending order of count, ignoring empty
// strings. Equal counts are ordered by ascending value.
func ValueCounts(values []string) []Count {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	result := make([]Count, 0, len(counts))
	for v, n := range counts {
		result = append(result, Count{Value: v, Count: n})
	}
	slices.SortFunc(result, func(a, b Count) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return result
}
