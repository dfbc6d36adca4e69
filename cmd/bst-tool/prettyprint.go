package main

import (
	"fmt"
	"io"

	"github.com/bluesky-social/seedtree/bst"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Usage: "tree shape output: 'tree' (indented branches), 'ascii' (sideways), or 'none'",
	Value: "tree",
}

var orderFlag = &cli.StringSliceFlag{
	Name:  "order",
	Usage: "traversal orders to print (level, in, pre, post)",
	Value: cli.NewStringSlice("level", "pre", "post", "in"),
}

// Renders the tree top-down with treeprint. Each child is tagged [L] or [R].
func prettyTree(root *bst.Node[int]) string {
	if root == nil {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(root.Key)
	addChildren(tree, root)
	return tree.String()
}

func addChildren(branch treeprint.Tree, n *bst.Node[int]) {
	for _, c := range []struct {
		meta  string
		child *bst.Node[int]
	}{{"L", n.Left}, {"R", n.Right}} {
		if c.child == nil {
			continue
		}
		if c.child.IsLeaf() {
			branch.AddMetaNode(c.meta, c.child.Key)
			continue
		}
		addChildren(branch.AddMetaBranch(c.meta, c.child.Key), c.child)
	}
}

func printShape(w io.Writer, t *bst.Tree[int], format string) error {
	switch format {
	case "tree":
		fmt.Fprint(w, prettyTree(t.Root))
	case "ascii":
		if t.IsEmpty() {
			fmt.Fprintln(w, "(empty)")
		}
		bst.DebugPrintTree(w, t.Root)
	case "none":
	default:
		return fmt.Errorf("unknown tree format: %q", format)
	}
	return nil
}

func parseOrders(names []string) ([]bst.Order, error) {
	orders := make([]bst.Order, 0, len(names))
	for _, name := range names {
		o, err := bst.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Prints shape, balance, height, and the requested traversals.
func printReport(w io.Writer, t *bst.Tree[int], format string, orders []bst.Order) error {
	if err := printShape(w, t, format); err != nil {
		return err
	}
	fmt.Fprintf(w, "nodes: %d\n", t.Len())
	fmt.Fprintf(w, "height: %d\n", t.Height())
	fmt.Fprintf(w, "balanced: %t\n", t.IsBalanced())
	for _, o := range orders {
		fmt.Fprintf(w, "%s: %v\n", o, t.Collect(o))
	}
	return nil
}
