package metered

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var insertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bst_tree_inserts_total",
	Help: "Keys inserted into the tree",
}, []string{"tree"})

var deletesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bst_tree_deletes_total",
	Help: "Delete calls against the tree, by whether the key was present",
}, []string{"tree", "status"})

var lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bst_tree_lookups_total",
	Help: "Key lookups against the tree, by result",
}, []string{"tree", "status"})

var rebalancesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bst_tree_rebalances_total",
	Help: "Full rebuilds of the tree",
}, []string{"tree"})

var rebalanceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "bst_tree_rebalance_duration",
	Help:    "Time to rebuild the tree",
	Buckets: prometheus.ExponentialBucketsRange(0.00001, 2, 20),
}, []string{"tree"})

var treeHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "bst_tree_height",
	Help: "Height of the tree when last observed",
}, []string{"tree"})

var treeNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "bst_tree_nodes",
	Help: "Node count of the tree when last observed",
}, []string{"tree"})

var treeBalanced = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "bst_tree_balanced",
	Help: "1 if the tree was balanced when last observed, else 0",
}, []string{"tree"})
