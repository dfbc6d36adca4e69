package bst

import (
	"cmp"
	"errors"
)

type Tree[K cmp.Ordered] struct {
	Root *Node[K]
}

var ErrInvalidTree = errors.New("invalid BST structure")

var ErrInvalidOperation = errors.New("not a valid tree operation")

var ErrInvalidKey = errors.New("not a valid tree key")

// Builds a balanced tree from an arbitrary collection of keys. The input may be unsorted, contain duplicates, or be empty; it is not modified.
func New[K cmp.Ordered](keys []K) *Tree[K] {
	return &Tree[K]{
		Root: BuildTree(keys),
	}
}

func (t *Tree[K]) IsEmpty() bool {
	return t.Root == nil
}

// Counts nodes by walking the whole tree.
func (t *Tree[K]) Len() int {
	return size(t.Root)
}

// Adds a key to the tree. Keys equal to an existing node are inserted again, in the right sub-tree of that node.
func (t *Tree[K]) Insert(key K) {
	t.Root = nodeInsert(t.Root, key)
}

// Removes the first node found with the key. If the key is not in the tree, this is a no-op.
func (t *Tree[K]) Delete(key K) {
	t.Root = nodeRemove(t.Root, key)
}

// Returns the node holding key, or nil if the key is not in the tree.
func (t *Tree[K]) Find(key K) *Node[K] {
	return nodeFind(t.Root, key)
}

func (t *Tree[K]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Lowest key. The bool is false for an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	if t.Root == nil {
		var zero K
		return zero, false
	}
	return minNode(t.Root).Key, true
}

// Highest key. The bool is false for an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	if t.Root == nil {
		var zero K
		return zero, false
	}
	return maxNode(t.Root).Key, true
}
