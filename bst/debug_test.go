package bst

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugPrintTree(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	DebugPrintTree(&buf, New([]int{5, 3, 8, 3, 1}).Root)

	expected := strings.Join([]string{
		"│   ┌── 8",
		"└── 5",
		"    └── 3",
		"        └── 1",
		"",
	}, "\n")
	assert.Equal(expected, buf.String())

	buf.Reset()
	DebugPrintTree[int](&buf, nil)
	assert.Empty(buf.String())
}
