package bst

import (
	"cmp"
)

// Height of the root; -1 for an empty tree.
func (t *Tree[K]) Height() int {
	return Height(t.Root)
}

// Returns the number of edges from the root to node n, or -1 if n is not in the tree.
//
// The search is by node identity, not by key, since duplicate keys may exist. Both sub-trees are searched; a match on the left wins.
func (t *Tree[K]) Depth(n *Node[K]) int {
	if n == nil {
		return -1
	}
	return nodeDepth(t.Root, n, 0)
}

func nodeDepth[K cmp.Ordered](cur, target *Node[K], depth int) int {
	if cur == nil {
		return -1
	}
	if cur == target {
		return depth
	}
	if d := nodeDepth(cur.Left, target, depth+1); d != -1 {
		return d
	}
	return nodeDepth(cur.Right, target, depth+1)
}

// Reports whether every node has sub-tree heights differing by at most one. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	_, ok := balancedHeight(t.Root)
	return ok
}

// height and balance of the sub-tree in one post-order pass. height is meaningless when the bool is false
func balancedHeight[K cmp.Ordered](n *Node[K]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := balancedHeight(n.Left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.Right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// Discards the current structure and rebuilds a minimal-height tree from the in-order keys.
//
// Rebuilding goes through BuildTree, so duplicate keys admitted by Insert are collapsed.
func (t *Tree[K]) Rebalance() {
	t.Root = BuildTree(t.InOrder())
}
