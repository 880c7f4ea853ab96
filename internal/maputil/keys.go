// Package maputil provides helpers for working with decoded JSON documents:
// deterministic key ordering, key-set differences, and tolerant accessors
// that treat missing or wrongly typed values as empty.
package maputil

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// A nil or empty map yields an empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(m))
}

// KeyDiff partitions the keys of two maps into removed, added, and shared sets.
// Each set is sorted.
type KeyDiff struct {
	Removed []string
	Added   []string
	Shared  []string
}

// DiffKeys compares the key sets of old and cur.
func DiffKeys[V, W any](old map[string]V, cur map[string]W) KeyDiff {
	var kd KeyDiff
	for _, k := range SortedKeys(old) {
		if _, ok := cur[k]; ok {
			kd.Shared = append(kd.Shared, k)
		} else {
			kd.Removed = append(kd.Removed, k)
		}
	}
	for _, k := range SortedKeys(cur) {
		if _, ok := old[k]; !ok {
			kd.Added = append(kd.Added, k)
		}
	}
	return kd
}
