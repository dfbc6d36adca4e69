package bst

import (
	"cmp"
)

// Inserts key in the sub-tree rooted at n, returning the new sub-tree root.
//
// Lower keys go left; equal or greater keys go right, so duplicates are admitted.
func nodeInsert[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	if n == nil {
		return &Node[K]{Key: key}
	}
	if key < n.Key {
		n.Left = nodeInsert(n.Left, key)
	} else {
		n.Right = nodeInsert(n.Right, key)
	}
	return n
}
