package bst

import (
	"cmp"
	"fmt"
	"io"
)

// Writes the tree shape sideways: right sub-trees above, left sub-trees below, one node per line.
func DebugPrintTree[K cmp.Ordered](w io.Writer, n *Node[K]) {
	debugPrintNode(w, n, "", true)
}

func debugPrintNode[K cmp.Ordered](w io.Writer, n *Node[K], prefix string, isLeft bool) {
	if n == nil {
		return
	}
	if n.Right != nil {
		next := prefix + "    "
		if isLeft {
			next = prefix + "│   "
		}
		debugPrintNode(w, n.Right, next, false)
	}
	branch := "┌── "
	if isLeft {
		branch = "└── "
	}
	fmt.Fprintf(w, "%s%s%v\n", prefix, branch, n.Key)
	if n.Left != nil {
		next := prefix + "│   "
		if isLeft {
			next = prefix + "    "
		}
		debugPrintNode(w, n.Left, next, true)
	}
}
