package bst

import (
	"cmp"
	"fmt"
	"iter"
)

// Order selects a traversal order.
type Order int

const (
	LevelOrder Order = iota
	InOrder
	PreOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case LevelOrder:
		return "level-order"
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Parses the names returned by Order.String, plus the short forms "level", "in", "pre" and "post".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "level-order", "level":
		return LevelOrder, nil
	case "in-order", "in":
		return InOrder, nil
	case "pre-order", "pre":
		return PreOrder, nil
	case "post-order", "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order: %q", s)
}

// Lazily yields nodes in the given order. Breaking out of a range loop stops the walk.
func (t *Tree[K]) Nodes(order Order) iter.Seq[*Node[K]] {
	root := t.Root
	return func(yield func(*Node[K]) bool) {
		switch order {
		case LevelOrder:
			walkLevel(root, yield)
		case InOrder:
			walkIn(root, yield)
		case PreOrder:
			walkPre(root, yield)
		case PostOrder:
			walkPost(root, yield)
		}
	}
}

// Lazily yields keys in the given order.
func (t *Tree[K]) Keys(order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.Nodes(order) {
			if !yield(n.Key) {
				return
			}
		}
	}
}

// Collects keys in visit order. An empty tree returns an empty (non-nil) slice.
func (t *Tree[K]) Collect(order Order) []K {
	out := []K{}
	for k := range t.Keys(order) {
		out = append(out, k)
	}
	return out
}

// Breadth-first keys, top to bottom and left to right within a level.
func (t *Tree[K]) LevelOrder() []K {
	return t.Collect(LevelOrder)
}

// Keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	return t.Collect(InOrder)
}

func (t *Tree[K]) PreOrder() []K {
	return t.Collect(PreOrder)
}

func (t *Tree[K]) PostOrder() []K {
	return t.Collect(PostOrder)
}

// Calls fn once for every node, in the given order.
func (t *Tree[K]) Visit(order Order, fn func(*Node[K])) {
	for n := range t.Nodes(order) {
		fn(n)
	}
}

func (t *Tree[K]) VisitLevelOrder(fn func(*Node[K])) {
	t.Visit(LevelOrder, fn)
}

func (t *Tree[K]) VisitInOrder(fn func(*Node[K])) {
	t.Visit(InOrder, fn)
}

func (t *Tree[K]) VisitPreOrder(fn func(*Node[K])) {
	t.Visit(PreOrder, fn)
}

func (t *Tree[K]) VisitPostOrder(fn func(*Node[K])) {
	t.Visit(PostOrder, fn)
}

// FIFO queue seeded with the root; children are enqueued left then right
func walkLevel[K cmp.Ordered](root *Node[K], yield func(*Node[K]) bool) {
	if root == nil {
		return
	}
	queue := []*Node[K]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		if !yield(n) {
			return
		}
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}
}

// the recursive walkers return false once yield asks to stop

func walkIn[K cmp.Ordered](n *Node[K], yield func(*Node[K]) bool) bool {
	if n == nil {
		return true
	}
	return walkIn(n.Left, yield) && yield(n) && walkIn(n.Right, yield)
}

func walkPre[K cmp.Ordered](n *Node[K], yield func(*Node[K]) bool) bool {
	if n == nil {
		return true
	}
	return yield(n) && walkPre(n.Left, yield) && walkPre(n.Right, yield)
}

func walkPost[K cmp.Ordered](n *Node[K], yield func(*Node[K]) bool) bool {
	if n == nil {
		return true
	}
	return walkPost(n.Left, yield) && walkPost(n.Right, yield) && yield(n)
}
