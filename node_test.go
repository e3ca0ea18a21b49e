package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkCounts verifies that every node's count equals the number of
// value-bearing nodes in its subtree, and that no node other than the
// root is both childless and valueless.
func checkCounts[S comparable, V any](t *testing.T, n *node[S, V], isRoot bool) int {
	t.Helper()
	total := 0
	if n.hasValue {
		total = 1
	}
	for _, child := range n.children {
		total += checkCounts(t, child, false)
	}
	require.Equal(t, total, n.count, "subtree count out of sync")
	if !isRoot {
		require.False(t, len(n.children) == 0 && !n.hasValue, "dangling empty node")
	}
	return total
}

func TestNodeCounts(t *testing.T) {
	t.Run("attach propagates to ancestors", func(t *testing.T) {
		root := newNode[rune, int](nil)
		a := root.childOrCreate('a')
		b := a.childOrCreate('b')
		b.attach(1)
		assert.Equal(t, 1, root.count)
		assert.Equal(t, 1, a.count)
		assert.Equal(t, 1, b.count)
	})

	t.Run("attach twice counts once", func(t *testing.T) {
		root := newNode[rune, int](nil)
		a := root.childOrCreate('a')
		a.attach(1)
		a.attach(2)
		assert.Equal(t, 1, root.count)
		assert.Equal(t, 2, a.value)
	})

	t.Run("detach reverses attach", func(t *testing.T) {
		root := newNode[rune, int](nil)
		a := root.childOrCreate('a')
		a.attach(1)
		a.detach()
		assert.Equal(t, 0, root.count)
		assert.False(t, a.hasValue)
		a.detach()
		assert.Equal(t, 0, root.count)
	})

	t.Run("node creation alone does not count", func(t *testing.T) {
		root := newNode[rune, int](nil)
		a := root.childOrCreate('a')
		a.childOrCreate('b')
		assert.Equal(t, 0, root.count)
	})

	t.Run("invariants hold across mutations", func(t *testing.T) {
		tr := NewString[int]()
		words := []string{"cat", "cats", "catacomb", "apple", "app", "banana"}
		for i, w := range words {
			tr.Set(w, i)
		}
		checkCounts(t, tr.root, true)
		require.NoError(t, tr.Delete("cat"))
		require.NoError(t, tr.Delete("banana"))
		tr.Set("app", 99)
		checkCounts(t, tr.root, true)
		assert.Equal(t, 4, tr.Len())
	})
}

func TestNodeChildOrder(t *testing.T) {
	root := newNode[rune, int](nil)
	for _, r := range "cba" {
		root.childOrCreate(r)
	}
	assert.Equal(t, []rune("cba"), root.order)
	root.removeChild('b')
	assert.Equal(t, []rune("ca"), root.order)
	// recreating appends at the end
	root.childOrCreate('b')
	assert.Equal(t, []rune("cab"), root.order)
}
