package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	assert := assert.New(t)

	good := &Tree[int]{Root: &Node[int]{
		Key:   10,
		Left:  &Node[int]{Key: 5, Right: &Node[int]{Key: 7}},
		Right: &Node[int]{Key: 10},
	}}
	assert.NoError(good.Verify())

	// 12 is in the left sub-tree of 10
	deep := &Tree[int]{Root: &Node[int]{
		Key:   10,
		Left:  &Node[int]{Key: 5, Right: &Node[int]{Key: 12}},
		Right: &Node[int]{Key: 15},
	}}
	assert.ErrorIs(deep.Verify(), ErrInvalidTree)

	// equal keys are only allowed on the right
	leftDup := &Tree[int]{Root: &Node[int]{
		Key:  10,
		Left: &Node[int]{Key: 10},
	}}
	assert.ErrorIs(leftDup.Verify(), ErrInvalidTree)

	rightLow := &Tree[int]{Root: &Node[int]{
		Key:   10,
		Right: &Node[int]{Key: 20, Left: &Node[int]{Key: 9}},
	}}
	assert.ErrorIs(rightLow.Verify(), ErrInvalidTree)
}
