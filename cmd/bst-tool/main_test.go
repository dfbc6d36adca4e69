package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bluesky-social/seedtree/bst"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newApp(&buf).Run(append([]string{"bst-tool", "--log-level", "warn"}, args...))
	return buf.String(), err
}

func TestBuildCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "build", "5,3,8,3,1")
	require.NoError(t, err)
	assert.Contains(out, "nodes: 4\n")
	assert.Contains(out, "height: 2\n")
	assert.Contains(out, "balanced: true\n")
	assert.Contains(out, "level-order: [5 3 8 1]\n")
	assert.Contains(out, "pre-order: [5 3 1 8]\n")
	assert.Contains(out, "post-order: [1 3 8 5]\n")
	assert.Contains(out, "in-order: [1 3 5 8]\n")
	assert.Contains(out, "[L]  3")

	out, err = runTool(t, "build", "--format", "ascii", "--order", "in", "5", "3", "8")
	require.NoError(t, err)
	assert.Contains(out, "└── 5")
	assert.Contains(out, "in-order: [3 5 8]\n")
	assert.NotContains(out, "pre-order")

	out, err = runTool(t, "build", "--format", "none")
	require.NoError(t, err)
	assert.Contains(out, "nodes: 0\n")
	assert.Contains(out, "height: -1\n")

	_, err = runTool(t, "build", "1,x")
	assert.ErrorIs(err, bst.ErrInvalidKey)

	_, err = runTool(t, "build", "--format", "fancy", "1")
	assert.Error(err)

	_, err = runTool(t, "build", "--order", "sideways", "1")
	assert.Error(err)
}

func TestApplyCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "apply", "--keys", "5,3,8,3,1", "--format", "none", "--order", "in", "--", "+9", "+10,+11", "+12")
	require.NoError(t, err)
	assert.Contains(out, "balanced: false\n")
	assert.Contains(out, "in-order: [1 3 5 8 9 10 11 12]\n")

	out, err = runTool(t, "apply", "--keys", "5,3,8,3,1", "--rebalance", "--format", "none", "--order", "in", "--order", "level", "--", "+9", "+10", "+11", "+12")
	require.NoError(t, err)
	assert.Contains(out, "balanced: true\n")
	assert.Contains(out, "in-order: [1 3 5 8 9 10 11 12]\n")
	assert.Contains(out, "level-order: [9 5 11 3 8 10 12 1]\n")

	out, err = runTool(t, "apply", "--keys", "1,2,3", "--format", "none", "--order", "in", "--", "-2", "-7")
	require.NoError(t, err)
	assert.Contains(out, "in-order: [1 3]\n")

	_, err = runTool(t, "apply", "--", "*3")
	assert.ErrorIs(err, bst.ErrInvalidOperation)
}

func TestDemoCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "demo", "--seed", "3", "--format", "none")
	require.NoError(t, err)
	assert.Contains(out, "Initial random tree:")
	assert.Contains(out, "After adding keys above 100")
	assert.Contains(out, "After rebalancing, balanced: true\n")
	assert.True(strings.HasSuffix(strings.TrimSpace(out), "]"))

	// final in-order traversal ends with the keys added above max
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(strings.HasSuffix(lines[len(lines)-1], "101 102 103 104]"))

	again, err := runTool(t, "demo", "--seed", "3", "--format", "none")
	require.NoError(t, err)
	assert.Equal(out, again)
}

func TestBenchCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "bench", "--size", "200", "--max", "1000", "--ops", "500", "--check-every", "50", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(out, "applied 500 operations")
	assert.Contains(out, "bst_tree_inserts_total")
	assert.Contains(out, "bst_tree_height ")

	_, err = runTool(t, "bench", "--delete-frac", "2")
	assert.Error(err)
}

func TestPrettyTree(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("(empty)\n", prettyTree(nil))

	out := prettyTree(bst.New([]int{1, 2, 3, 4, 5, 6, 7}).Root)
	assert.True(strings.HasPrefix(out, "4\n"))
	assert.Contains(out, "[L]  2")
	assert.Contains(out, "[R]  6")
	assert.Contains(out, "[R]  7")
}
