package board

import (
	"sort"

	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// GroupBy buckets tasks by the key keyOf extracts. Keys are returned in
// the order they are first seen, so callers get a deterministic group
// order without depending on map iteration. One generic function serves
// the order, team and station axes; callers only vary the selector.
func GroupBy[K comparable](tasks []plan.Task, keyOf func(plan.Task) K) ([]K, map[K][]plan.Task) {
	groups := make(map[K][]plan.Task)
	var keys []K
	for _, t := range tasks {
		k := keyOf(t)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], t)
	}
	return keys, groups
}

// SortByStart returns a copy of tasks stable-sorted by planned start
// ascending. Ties keep their original relative order.
func SortByStart(tasks []plan.Task) []plan.Task {
	sorted := make([]plan.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start.Time)
	})
	return sorted
}
