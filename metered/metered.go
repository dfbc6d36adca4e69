// Package metered wraps a bst.Tree, recording prometheus metrics and debug logs for every operation.
//
// Metrics are labeled by tree name, so several trees can share one registry.
package metered

import (
	"cmp"
	"log/slog"
	"time"

	"github.com/bluesky-social/seedtree/bst"
)

type Tree[K cmp.Ordered] struct {
	Inner  *bst.Tree[K]
	Name   string
	Logger *slog.Logger
}

// Wraps inner. A nil logger means slog.Default().
func NewTree[K cmp.Ordered](name string, inner *bst.Tree[K], logger *slog.Logger) *Tree[K] {
	if logger == nil {
		logger = slog.Default()
	}
	if inner == nil {
		inner = &bst.Tree[K]{}
	}
	return &Tree[K]{
		Inner:  inner,
		Name:   name,
		Logger: logger.With("component", "bst", "tree", name),
	}
}

func (t *Tree[K]) Insert(key K) {
	t.Inner.Insert(key)
	insertsTotal.WithLabelValues(t.Name).Inc()
	t.Logger.Debug("inserted key", "key", key)
}

func (t *Tree[K]) Delete(key K) {
	status := "found"
	if !t.Inner.Contains(key) {
		status = "absent"
	}
	t.Inner.Delete(key)
	deletesTotal.WithLabelValues(t.Name, status).Inc()
	t.Logger.Debug("deleted key", "key", key, "status", status)
}

func (t *Tree[K]) Find(key K) *bst.Node[K] {
	n := t.Inner.Find(key)
	status := "hit"
	if n == nil {
		status = "miss"
	}
	lookupsTotal.WithLabelValues(t.Name, status).Inc()
	return n
}

func (t *Tree[K]) Apply(ops ...bst.Operation[K]) error {
	if err := t.Inner.Apply(ops...); err != nil {
		t.Logger.Warn("rejected operation batch", "ops", len(ops), "err", err)
		return err
	}
	for _, op := range ops {
		switch op.Kind {
		case bst.OpInsert:
			insertsTotal.WithLabelValues(t.Name).Inc()
		case bst.OpDelete:
			// presence before the batch is unknown here
			deletesTotal.WithLabelValues(t.Name, "batch").Inc()
		}
	}
	t.Logger.Debug("applied operation batch", "ops", len(ops))
	return nil
}

// Rebuilds the tree, recording duration and the shape before and after.
func (t *Tree[K]) Rebalance() {
	before := t.Inner.Height()
	start := time.Now()
	t.Inner.Rebalance()
	rebalanceDuration.WithLabelValues(t.Name).Observe(time.Since(start).Seconds())
	rebalancesTotal.WithLabelValues(t.Name).Inc()
	t.Logger.Info("rebalanced tree", "heightBefore", before, "heightAfter", t.Inner.Height(), "duration", time.Since(start))
	t.Observe()
}

// Walks the tree and updates the shape gauges (height, node count, balance).
func (t *Tree[K]) Observe() Shape {
	s := ShapeOf(t.Inner)
	treeHeight.WithLabelValues(t.Name).Set(float64(s.Height))
	treeNodes.WithLabelValues(t.Name).Set(float64(s.Nodes))
	balanced := 0.0
	if s.Balanced {
		balanced = 1.0
	}
	treeBalanced.WithLabelValues(t.Name).Set(balanced)
	return s
}

type Shape struct {
	Height   int
	Nodes    int
	Balanced bool
}

func ShapeOf[K cmp.Ordered](t *bst.Tree[K]) Shape {
	return Shape{
		Height:   t.Height(),
		Nodes:    t.Len(),
		Balanced: t.IsBalanced(),
	}
}
