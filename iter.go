package trie

import "iter"

// walk yields every (key, value) pair in the subtree rooted at n in
// pre-order: the node's own value first, then each child in insertion
// order. path is the symbol path from the root to n; it is mutated in
// place (push before descending, pop after) and must be owned by a single
// traversal. Returns false once yield stops the iteration.
func walk[S comparable, K, V any](n *node[S, V], path []S, codec Codec[S, K], yield func(K, V) bool) bool {
	if n.hasValue {
		if !yield(codec.FromSymbols(path), n.value) {
			return false
		}
	}
	for _, sym := range n.order {
		path = append(path, sym)
		if !walk(n.children[sym], path, codec, yield) {
			return false
		}
		path = path[:len(path)-1]
	}
	return true
}

// Items returns an iterator over all (key, value) pairs in the trie, in
// pre-order with children visited in insertion order. Each call returns
// an independent iterator with its own path buffer; two active iterators
// never share state. The trie must not be mutated during iteration.
func (t *Trie[S, K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.root, nil, t.codec, yield)
	}
}

// Keys returns an iterator over all stored keys, in Items order.
func (t *Trie[S, K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(t.root, nil, t.codec, func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// Values returns an iterator over all stored values, in Items order.
func (t *Trie[S, K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		walk(t.root, nil, t.codec, func(_ K, v V) bool {
			return yield(v)
		})
	}
}

// IterPrefixes returns an iterator over the stored keys that are prefixes
// of key, paired with their values, in order of increasing prefix length.
// The walk stops quietly at the first symbol missing from the tree; the
// full key need not exist.
func (t *Trie[S, K, V]) IterPrefixes(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		syms := t.codec.ToSymbols(key)
		n := t.root
		for i, sym := range syms {
			n = n.child(sym)
			if n == nil {
				return
			}
			if n.hasValue {
				if !yield(t.codec.FromSymbols(syms[:i+1]), n.value) {
					return
				}
			}
		}
	}
}

// FindPrefix returns every stored key that has key as a prefix, including
// key itself if stored, in pre-order. The second result is false when
// key's node does not exist in the tree at all, not even as a bare
// prefix; an existing node with no stored descendants yields an empty
// slice and true.
func (t *Trie[S, K, V]) FindPrefix(key K) ([]K, bool) {
	n := t.find(key)
	if n == nil {
		return nil, false
	}
	keys := make([]K, 0, n.count)
	walk(n, t.codec.ToSymbols(key), t.codec, func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys, true
}
