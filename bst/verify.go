package bst

import (
	"cmp"
	"fmt"
)

// Checks the ordering invariant over the whole tree: every key in a left sub-tree is lower than the node, every key in a right sub-tree is greater or equal.
func (t *Tree[K]) Verify() error {
	return t.Root.verifyStructure(nil, nil)
}

// keys in the sub-tree must be >= lo (set by a right descent) and < hi (set by a left descent). nil means unbounded
func (n *Node[K]) verifyStructure(lo, hi *K) error {
	if n == nil {
		return nil
	}
	if lo != nil && cmp.Less(n.Key, *lo) {
		return fmt.Errorf("%w: key %v below lower bound %v", ErrInvalidTree, n.Key, *lo)
	}
	if hi != nil && !cmp.Less(n.Key, *hi) {
		return fmt.Errorf("%w: key %v not below upper bound %v", ErrInvalidTree, n.Key, *hi)
	}
	if err := n.Left.verifyStructure(lo, &n.Key); err != nil {
		return err
	}
	return n.Right.verifyStructure(&n.Key, hi)
}
