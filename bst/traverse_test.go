package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraversalOrders(t *testing.T) {
	r := &Node[int]{
		Key: 32,
		Left: &Node[int]{
			Key:   21,
			Left:  &Node[int]{Key: 7},
			Right: &Node[int]{Key: 28},
		},
		Right: &Node[int]{
			Key:   38,
			Left:  &Node[int]{Key: 35},
			Right: &Node[int]{Key: 47},
		},
	}
	tree := Tree[int]{Root: r}

	testVec := []struct {
		Order Order
		Keys  []int
	}{
		{LevelOrder, []int{32, 21, 38, 7, 28, 35, 47}},
		{InOrder, []int{7, 21, 28, 32, 35, 38, 47}},
		{PreOrder, []int{32, 21, 7, 28, 38, 35, 47}},
		{PostOrder, []int{7, 28, 21, 35, 47, 38, 32}},
	}

	for _, c := range testVec {
		assert.Equal(t, c.Keys, tree.Collect(c.Order), c.Order.String())

		var visited []int
		tree.Visit(c.Order, func(n *Node[int]) {
			visited = append(visited, n.Key)
		})
		assert.Equal(t, c.Keys, visited, c.Order.String())
	}

	assert.Equal(t, testVec[0].Keys, tree.LevelOrder())
	assert.Equal(t, testVec[1].Keys, tree.InOrder())
	assert.Equal(t, testVec[2].Keys, tree.PreOrder())
	assert.Equal(t, testVec[3].Keys, tree.PostOrder())
}

func TestVisitors(t *testing.T) {
	assert := assert.New(t)
	tree := New([]int{5, 3, 8, 3, 1})

	var got []int
	record := func(n *Node[int]) {
		got = append(got, n.Key)
	}

	tree.VisitLevelOrder(record)
	assert.Equal([]int{5, 3, 8, 1}, got)

	got = nil
	tree.VisitInOrder(record)
	assert.Equal([]int{1, 3, 5, 8}, got)

	got = nil
	tree.VisitPreOrder(record)
	assert.Equal([]int{5, 3, 1, 8}, got)

	got = nil
	tree.VisitPostOrder(record)
	assert.Equal([]int{1, 3, 8, 5}, got)

	// visitor may look at node structure, but traversal does not mutate
	leaves := 0
	tree.VisitInOrder(func(n *Node[int]) {
		if n.IsLeaf() {
			leaves++
		}
	})
	assert.Equal(2, leaves)
	assert.Equal([]int{1, 3, 5, 8}, tree.InOrder())

	empty := &Tree[int]{}
	calls := 0
	empty.VisitLevelOrder(func(*Node[int]) { calls++ })
	empty.VisitPostOrder(func(*Node[int]) { calls++ })
	assert.Equal(0, calls)
}

func TestIterStopsEarly(t *testing.T) {
	assert := assert.New(t)
	tree := New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	for _, order := range []Order{LevelOrder, InOrder, PreOrder, PostOrder} {
		var got []int
		for k := range tree.Keys(order) {
			got = append(got, k)
			if len(got) == 3 {
				break
			}
		}
		assert.Len(got, 3, order.String())
		assert.Equal(tree.Collect(order)[:3], got, order.String())
	}

	// ascending iteration
	var prev int
	first := true
	for n := range tree.Nodes(InOrder) {
		if !first {
			assert.Less(prev, n.Key)
		}
		prev = n.Key
		first = false
	}
}

func TestParseOrder(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []Order{LevelOrder, InOrder, PreOrder, PostOrder} {
		parsed, err := ParseOrder(o.String())
		assert.NoError(err)
		assert.Equal(o, parsed)
	}

	o, err := ParseOrder("post")
	assert.NoError(err)
	assert.Equal(PostOrder, o)

	_, err = ParseOrder("sideways")
	assert.Error(err)
	assert.Equal("Order(9)", Order(9).String())
}
