package bst

import (
	"cmp"
	"slices"
)

// Creates a height-balanced sub-tree from keys, returning its root (nil for empty input).
//
// Keys are sorted and de-duplicated first; the caller's slice is never modified. Already sorted input skips the sort.
func BuildTree[K cmp.Ordered](keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	sorted := slices.Clone(keys)
	if !slices.IsSorted(sorted) {
		slices.Sort(sorted)
	}
	sorted = slices.Compact(sorted)
	return buildSorted(sorted)
}

// keys must be sorted and unique. the element at index len/2 becomes the sub-tree root, so even-length ranges put one more key on the left
func buildSorted[K cmp.Ordered](keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	return &Node[K]{
		Key:   keys[mid],
		Left:  buildSorted(keys[:mid]),
		Right: buildSorted(keys[mid+1:]),
	}
}
