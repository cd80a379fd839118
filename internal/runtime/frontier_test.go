package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontier_OrdersByCostThenInsertion(t *testing.T) {
	f := newFrontier[string]()
	f.push("c", 2, 0)
	f.push("a", 1, 0)
	f.push("b", 2, 0)
	f.push("d", 1, 3)

	var order []string
	for f.Len() > 0 {
		order = append(order, f.pop().state)
	}
	assert.Equal(t, []string{"a", "d", "c", "b"}, order)
}

func TestFrontier_KeepsDepth(t *testing.T) {
	f := newFrontier[int]()
	f.push(7, 0.5, 4)

	n := f.pop()
	assert.Equal(t, 7, n.state)
	assert.Equal(t, 4, n.depth)
	assert.Equal(t, 0, f.Len())
}
