package trie

// node is a single trie vertex. It may hold a value, owns its children and
// keeps a non-owning pointer to its parent, used only to propagate subtree
// count deltas upward. A child never outlives its parent, so the back
// pointer is always valid.
//
// Children are looked up through the map; order records the symbols in
// insertion order so that traversal is deterministic.
type node[S comparable, V any] struct {
	value    V
	hasValue bool
	children map[S]*node[S, V]
	order    []S
	parent   *node[S, V]

	// count is the number of value-bearing nodes in the subtree rooted
	// here, including this node.
	count int
}

func newNode[S comparable, V any](parent *node[S, V]) *node[S, V] {
	return &node[S, V]{
		children: make(map[S]*node[S, V]),
		parent:   parent,
	}
}

// attach stores v on the node. Counts change only on the none→some
// transition; a plain overwrite leaves them untouched.
func (n *node[S, V]) attach(v V) {
	n.value = v
	if n.hasValue {
		return
	}
	n.hasValue = true
	for p := n; p != nil; p = p.parent {
		p.count++
	}
}

// detach clears the node's value, decrementing every ancestor's count.
// A no-op if the node holds no value.
func (n *node[S, V]) detach() {
	if !n.hasValue {
		return
	}
	var zero V
	n.value = zero
	n.hasValue = false
	for p := n; p != nil; p = p.parent {
		p.count--
	}
}

func (n *node[S, V]) child(sym S) *node[S, V] {
	return n.children[sym]
}

func (n *node[S, V]) childOrCreate(sym S) *node[S, V] {
	if c, ok := n.children[sym]; ok {
		return c
	}
	c := newNode(n)
	n.children[sym] = c
	n.order = append(n.order, sym)
	return c
}

func (n *node[S, V]) removeChild(sym S) {
	if _, ok := n.children[sym]; !ok {
		return
	}
	delete(n.children, sym)
	for i, s := range n.order {
		if s == sym {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}
