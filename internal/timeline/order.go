package timeline

import "sort"

// Sort orders records ascending by modification time, ties broken
// lexicographically by path. Modification time is a proxy for capture
// order; every later stage relies on this order staying fixed.
func Sort(records []*Record) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.Before(b.ModTime)
		}
		return a.Path < b.Path
	})
}
