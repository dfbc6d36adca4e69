package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/bluesky-social/seedtree/bst"
	"github.com/bluesky-social/seedtree/fakedata"
	"github.com/bluesky-social/seedtree/metered"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/urfave/cli/v2"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "run random insert/delete workloads, rebalancing when the tree degrades",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "size",
			Usage: "number of random keys to seed the tree with",
			Value: 10_000,
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "random keys are drawn from [0, max)",
			Value: 1_000_000,
		},
		&cli.IntFlag{
			Name:  "ops",
			Usage: "number of random operations to apply",
			Value: 100_000,
		},
		&cli.Float64Flag{
			Name:  "delete-frac",
			Usage: "fraction of operations which are deletes",
			Value: 0.3,
		},
		&cli.IntFlag{
			Name:  "check-every",
			Usage: "check balance (and rebalance if needed) after this many operations; zero disables",
			Value: 1_000,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed (zero for a random seed)",
			EnvVars: []string{"BST_SEED"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "if set, serve prometheus metrics at this address and keep running until interrupted",
			EnvVars: []string{"BST_METRICS_LISTEN"},
		},
	},
	Action: runBench,
}

func runBench(cctx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if addr := cctx.String("metrics-listen"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{Addr: addr, Handler: mux}
		go func() {
			slog.Info("serving metrics", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "err", err)
			}
		}()
	}

	gen := fakedata.NewKeyGenerator(cctx.Int64("seed"))
	keys, err := gen.RandomKeys(cctx.Int("size"), cctx.Int("max"))
	if err != nil {
		return err
	}
	ops, err := gen.RandomOperations(cctx.Int("ops"), cctx.Int("max"), cctx.Float64("delete-frac"))
	if err != nil {
		return err
	}

	tree := metered.NewTree("bench", bst.New(keys), slog.Default())
	start := time.Now()
	if err := runWorkload(ctx, tree, ops, cctx.Int("check-every")); err != nil {
		return err
	}
	elapsed := time.Since(start)
	shape := tree.Observe()

	w := cctx.App.Writer
	fmt.Fprintf(w, "applied %d operations in %s\n", len(ops), elapsed)
	fmt.Fprintf(w, "final shape: nodes=%d height=%d balanced=%t\n", shape.Nodes, shape.Height, shape.Balanced)
	if err := printMetricsSummary(w, prometheus.DefaultGatherer, "bench"); err != nil {
		return err
	}

	if srv != nil {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}

// Applies ops one at a time. Every checkEvery operations, a degraded tree is rebalanced.
func runWorkload(ctx context.Context, tree *metered.Tree[int], ops []bst.Operation[int], checkEvery int) error {
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch op.Kind {
		case bst.OpInsert:
			tree.Insert(op.Key)
		case bst.OpDelete:
			tree.Delete(op.Key)
		}
		if checkEvery > 0 && (i+1)%checkEvery == 0 {
			if !tree.Observe().Balanced {
				tree.Rebalance()
			}
		}
	}
	return nil
}

// Prints every bst_tree_* series labeled with the given tree name.
func printMetricsSummary(w io.Writer, g prometheus.Gatherer, treeName string) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "bst_tree_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			if !hasLabel(m, "tree", treeName) {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", mf.GetName(), otherLabels(m), metricValue(mf.GetType(), m)))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func hasLabel(m *dto.Metric, name, value string) bool {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}

func otherLabels(m *dto.Metric) string {
	var parts []string
	for _, lp := range m.GetLabel() {
		if lp.GetName() == "tree" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func metricValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%gs", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "?"
	}
}
