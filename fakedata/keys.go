package fakedata

import (
	"fmt"

	"github.com/bluesky-social/seedtree/bst"

	"github.com/brianvoe/gofakeit/v6"
)

// Generates random integer keys and operation scripts, for demos and benchmarks.
type KeyGenerator struct {
	faker *gofakeit.Faker
}

// A seed of zero picks a random seed; any other value gives a reproducible sequence.
func NewKeyGenerator(seed int64) *KeyGenerator {
	return &KeyGenerator{
		faker: gofakeit.New(seed),
	}
}

// Returns size keys, each in the range [0, max). Duplicates are likely, and expected.
func (g *KeyGenerator) RandomKeys(size, max int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative key count: %d", size)
	}
	if max < 1 {
		return nil, fmt.Errorf("key range must be positive: %d", max)
	}
	keys := make([]int, size)
	for i := range keys {
		keys[i] = g.faker.Number(0, max-1)
	}
	return keys, nil
}

// Returns count operations with keys in [0, max). Roughly deleteFrac of them are deletes.
func (g *KeyGenerator) RandomOperations(count, max int, deleteFrac float64) ([]bst.Operation[int], error) {
	if deleteFrac < 0 || deleteFrac > 1 {
		return nil, fmt.Errorf("delete fraction out of range: %f", deleteFrac)
	}
	keys, err := g.RandomKeys(count, max)
	if err != nil {
		return nil, err
	}
	ops := make([]bst.Operation[int], count)
	for i, k := range keys {
		kind := bst.OpInsert
		if g.faker.Float64Range(0, 1) < deleteFrac {
			kind = bst.OpDelete
		}
		ops[i] = bst.Operation[int]{Kind: kind, Key: k}
	}
	return ops, nil
}
