package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/seedtree/bst"
	"github.com/bluesky-social/seedtree/metered"
	"github.com/bluesky-social/seedtree/util/cliutil"

	"github.com/urfave/cli/v2"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a balanced tree from keys and print it",
	ArgsUsage: "<key>[,<key>...]...",
	Flags:     []cli.Flag{formatFlag, orderFlag},
	Action:    runBuild,
}

var cmdApply = &cli.Command{
	Name:      "apply",
	Usage:     "build a tree, then apply insert (+k) and delete (-k) operations",
	ArgsUsage: "[--] <op>[,<op>...]...",
	Flags: []cli.Flag{
		formatFlag,
		orderFlag,
		&cli.StringFlag{
			Name:    "keys",
			Usage:   "comma-separated initial keys",
			EnvVars: []string{"BST_KEYS"},
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebalance after applying operations",
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "check ordering invariant after applying operations",
			Value: true,
		},
	},
	Action: runApply,
}

func runBuild(cctx *cli.Context) error {
	keys, err := cliutil.ParseKeys(cctx.Args().Slice())
	if err != nil {
		return err
	}
	orders, err := parseOrders(cctx.StringSlice("order"))
	if err != nil {
		return err
	}
	tree := bst.New(keys)
	slog.Debug("built tree", "inputKeys", len(keys), "nodes", tree.Len())
	return printReport(cctx.App.Writer, tree, cctx.String("format"), orders)
}

func runApply(cctx *cli.Context) error {
	var keyArgs []string
	if cctx.String("keys") != "" {
		keyArgs = []string{cctx.String("keys")}
	}
	keys, err := cliutil.ParseKeys(keyArgs)
	if err != nil {
		return err
	}
	ops, err := cliutil.ParseOperations(cctx.Args().Slice())
	if err != nil {
		return err
	}
	orders, err := parseOrders(cctx.StringSlice("order"))
	if err != nil {
		return err
	}

	tree := metered.NewTree("apply", bst.New(keys), slog.Default())
	if err := tree.Apply(ops...); err != nil {
		return err
	}
	if cctx.Bool("verify") {
		if err := tree.Inner.Verify(); err != nil {
			return fmt.Errorf("tree failed verification after %d operations: %w", len(ops), err)
		}
	}
	if cctx.Bool("rebalance") {
		tree.Rebalance()
	}
	return printReport(cctx.App.Writer, tree.Inner, cctx.String("format"), orders)
}
