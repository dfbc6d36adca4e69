package bst

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

type OpKind int

const (
	OpInsert OpKind = iota + 1
	OpDelete
)

// A single mutation, which can be replayed against a tree.
type Operation[K cmp.Ordered] struct {
	Kind OpKind
	Key  K
}

func (op Operation[K]) IsInsert() bool {
	return op.Kind == OpInsert
}

func (op Operation[K]) IsDelete() bool {
	return op.Kind == OpDelete
}

// Textual form: "+<key>" for insert, "-<key>" for delete
func (op Operation[K]) String() string {
	switch op.Kind {
	case OpInsert:
		return fmt.Sprintf("+%v", op.Key)
	case OpDelete:
		return fmt.Sprintf("-%v", op.Key)
	default:
		return fmt.Sprintf("?%v", op.Key)
	}
}

// Applies operations in order. Fails without mutating anything if any operation has an unknown kind.
func (t *Tree[K]) Apply(ops ...Operation[K]) error {
	for i, op := range ops {
		if op.Kind != OpInsert && op.Kind != OpDelete {
			return fmt.Errorf("operation %d (%s): %w", i, op, ErrInvalidOperation)
		}
	}
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			t.Insert(op.Key)
		case OpDelete:
			t.Delete(op.Key)
		}
	}
	return nil
}

// Parses an integer key operation like "+9" or "-3". A bare integer is treated as an insert; negative keys need an explicit sign, as in "+-3".
func ParseOperation(s string) (Operation[int], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Operation[int]{}, fmt.Errorf("empty string: %w", ErrInvalidOperation)
	}
	kind := OpInsert
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		kind = OpDelete
		s = s[1:]
	}
	key, err := ParseKey(s)
	if err != nil {
		return Operation[int]{}, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	return Operation[int]{Kind: kind, Key: key}, nil
}

// Parses a base-10 integer key. Explicit signs are allowed ("-3", "+3").
func ParseKey(s string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return k, nil
}
