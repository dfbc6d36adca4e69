package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bluesky-social/seedtree/bst"
	"github.com/bluesky-social/seedtree/fakedata"
	"github.com/bluesky-social/seedtree/metered"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "build from random keys, unbalance with large keys, then rebalance",
	Flags: []cli.Flag{
		formatFlag,
		&cli.IntFlag{
			Name:  "size",
			Usage: "number of random keys to seed the tree with",
			Value: 20,
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "random keys are drawn from [0, max)",
			Value: 100,
		},
		&cli.IntFlag{
			Name:  "extra",
			Usage: "number of keys above max to insert, to unbalance the tree",
			Value: 4,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed (zero for a random seed)",
			EnvVars: []string{"BST_SEED"},
		},
	},
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	w := cctx.App.Writer
	format := cctx.String("format")
	maxKey := cctx.Int("max")

	keys, err := fakedata.NewKeyGenerator(cctx.Int64("seed")).RandomKeys(cctx.Int("size"), maxKey)
	if err != nil {
		return err
	}
	slog.Debug("generated random keys", "count", len(keys), "max", maxKey)

	tree := metered.NewTree("demo", bst.New(keys), slog.Default())

	fmt.Fprintln(w, "Initial random tree:")
	if err := printDemoState(w, tree.Inner, format); err != nil {
		return err
	}

	for i := 1; i <= cctx.Int("extra"); i++ {
		tree.Insert(maxKey + i)
	}
	fmt.Fprintf(w, "\nAfter adding keys above %d, balanced: %t\n", maxKey, tree.Observe().Balanced)

	tree.Rebalance()
	fmt.Fprintf(w, "After rebalancing, balanced: %t\n", tree.Inner.IsBalanced())

	fmt.Fprintln(w, "\nFinal tree state:")
	return printDemoState(w, tree.Inner, format)
}

func printDemoState(w io.Writer, t *bst.Tree[int], format string) error {
	if err := printShape(w, t, format); err != nil {
		return err
	}
	fmt.Fprintf(w, "balanced: %t\n", t.IsBalanced())
	fmt.Fprintf(w, "%s: %v\n", bst.LevelOrder, t.LevelOrder())
	fmt.Fprintf(w, "%s: %v\n", bst.PreOrder, t.PreOrder())
	fmt.Fprintf(w, "%s: %v\n", bst.PostOrder, t.PostOrder())
	fmt.Fprintf(w, "%s: %v\n", bst.InOrder, t.InOrder())
	return nil
}
