package trie

// Codec converts between the external key representation K and the symbol
// sequence used for tree descent, and reconstructs keys from accumulated
// symbol paths during traversal.
type Codec[S comparable, K any] interface {
	ToSymbols(key K) []S
	FromSymbols(parts []S) K
}

// SliceCodec is the identity codec for tries keyed directly by symbol
// slices.
type SliceCodec[S comparable] struct{}

func (SliceCodec[S]) ToSymbols(key []S) []S { return key }

func (SliceCodec[S]) FromSymbols(parts []S) []S {
	// parts aliases a traversal buffer that is reused after the yield,
	// so hand the caller its own copy.
	out := make([]S, len(parts))
	copy(out, parts)
	return out
}
