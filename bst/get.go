package bst

import (
	"cmp"
)

// Walks down from n comparing keys. Returns nil if the key is not in the sub-tree.
func nodeFind[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	for n != nil {
		switch {
		case key == n.Key:
			return n
		case key < n.Key:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return nil
}
