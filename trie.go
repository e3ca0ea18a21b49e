package trie

// Trie is a prefix tree mapping keys of type K, decomposed into symbols of
// type S by its Codec, to values of type V. The zero value is not usable;
// use New.
type Trie[S comparable, K, V any] struct {
	root  *node[S, V]
	codec Codec[S, K]
}

// New creates an empty trie using codec to translate between keys and
// symbol sequences.
func New[S comparable, K, V any](codec Codec[S, K]) *Trie[S, K, V] {
	return &Trie[S, K, V]{
		root:  newNode[S, V](nil),
		codec: codec,
	}
}

// NewFromMap creates a trie pre-populated from items. Insertion order
// follows Go's map iteration order, so traversal order over the result is
// not deterministic across runs.
func NewFromMap[S, K comparable, V any](codec Codec[S, K], items map[K]V) *Trie[S, K, V] {
	t := New[S, K, V](codec)
	for k, v := range items {
		t.Set(k, v)
	}
	return t
}

// find descends the key's symbol path and returns the terminal node, or
// nil if any symbol along the path is missing.
func (t *Trie[S, K, V]) find(key K) *node[S, V] {
	n := t.root
	for _, sym := range t.codec.ToSymbols(key) {
		n = n.child(sym)
		if n == nil {
			return nil
		}
	}
	return n
}

// Set stores value under key, creating intermediate nodes as needed.
// Overwriting an existing key replaces the value without touching counts.
func (t *Trie[S, K, V]) Set(key K, value V) {
	n := t.root
	for _, sym := range t.codec.ToSymbols(key) {
		n = n.childOrCreate(sym)
	}
	n.attach(value)
}

// Get returns the value stored under key. It returns ErrNotFound if the
// path does not exist or the terminal node is only a prefix of other keys.
func (t *Trie[S, K, V]) Get(key K) (V, error) {
	n := t.find(key)
	if n == nil || !n.hasValue {
		var zero V
		return zero, ErrNotFound
	}
	return n.value, nil
}

// Contains reports whether key is stored in the trie. A bare prefix of
// other keys does not count.
func (t *Trie[S, K, V]) Contains(key K) bool {
	n := t.find(key)
	return n != nil && n.hasValue
}

// Delete removes key's value from the trie. It returns ErrNotFound when
// the key's path does not exist. Nodes left both childless and valueless
// are pruned up to, but never including, the root.
func (t *Trie[S, K, V]) Delete(key K) error {
	syms := t.codec.ToSymbols(key)
	path := make([]*node[S, V], 1, len(syms)+1)
	path[0] = t.root
	n := t.root
	for _, sym := range syms {
		n = n.child(sym)
		if n == nil {
			return ErrNotFound
		}
		path = append(path, n)
	}
	n.detach()
	for i := len(syms); i > 0; i-- {
		child := path[i]
		if len(child.children) > 0 || child.hasValue {
			break
		}
		path[i-1].removeChild(syms[i-1])
	}
	return nil
}

// Len returns the number of keys stored in the trie.
func (t *Trie[S, K, V]) Len() int {
	return t.root.count
}

// Clear resets the trie to the empty state, keeping the root node.
func (t *Trie[S, K, V]) Clear() {
	r := t.root
	r.children = make(map[S]*node[S, V])
	r.order = nil
	var zero V
	r.value = zero
	r.hasValue = false
	r.count = 0
}
