package bst

import (
	"cmp"
)

// Represents a single key in the tree. A nil *Node is an empty sub-tree.
type Node[K cmp.Ordered] struct {
	Key   K
	Left  *Node[K]
	Right *Node[K]
}

func (n *Node[K]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Computes the height of the sub-tree rooted at n. A nil node has height -1, so a single leaf has height 0.
func Height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}

// Number of nodes in the sub-tree
func size[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.Left) + size(n.Right)
}

// walks left from n; n must not be nil
func minNode[K cmp.Ordered](n *Node[K]) *Node[K] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// walks right from n; n must not be nil
func maxNode[K cmp.Ordered](n *Node[K]) *Node[K] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}
