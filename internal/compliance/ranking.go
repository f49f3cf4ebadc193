// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package compliance

import "sort"

// KeyCount is a grouping key and the number of items that share it.
type KeyCount struct {
	Key   string
	Count int64
}

// CountBy groups items by key. Keys appear in first-seen order.
func CountBy[T any](items []T, key func(T) string) []KeyCount {
	index := make(map[string]int)
	out := make([]KeyCount, 0)
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, KeyCount{Key: k, Count: 1})
	}
	return out
}

// TopN sorts counts descending and keeps at most n entries. Equal counts
// keep their input order. n <= 0 keeps everything. The input is not modified.
func TopN(counts []KeyCount, n int) []KeyCount {
	out := make([]KeyCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
