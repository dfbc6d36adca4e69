package bst

import (
	"cmp"
)

// Removes key from the sub-tree rooted at n, returning the new sub-tree root. If the key is not found, the sub-tree is returned unmodified.
//
// A node with two children takes the key of its in-order successor (the minimum of the right sub-tree), and the successor is then removed from the right sub-tree. The successor never has a left child, so that second removal always terminates in the zero/one child case.
func nodeRemove[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	if n == nil {
		return nil
	}

	switch {
	case key < n.Key:
		n.Left = nodeRemove(n.Left, key)
		return n
	case key > n.Key:
		n.Right = nodeRemove(n.Right, key)
		return n
	}

	// found it
	if n.Left == nil {
		return n.Right
	}
	if n.Right == nil {
		return n.Left
	}

	n.Key = minNode(n.Right).Key
	n.Right = nodeRemove(n.Right, n.Key)
	return n
}
