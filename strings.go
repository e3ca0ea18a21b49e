package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stringCodec canonicalises string keys before splitting them into runes.
// Normalisation strips diacritics (NFD, remove marks, NFC); folding
// lowercases. Both apply on every operation, so "Jürgen" and "jurgen"
// address the same node when both are enabled.
type stringCodec struct {
	normalise bool
	fold      bool
}

func (c *stringCodec) ToSymbols(key string) []rune {
	if c.normalise {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, key); err == nil {
			key = normal
		}
	}
	if c.fold {
		key = strings.ToLower(key)
	}
	return []rune(key)
}

func (c *stringCodec) FromSymbols(parts []rune) string {
	return string(parts)
}

// StringTrie is a trie keyed by strings, descended rune by rune.
type StringTrie[V any] struct {
	*Trie[rune, string, V]
	codec *stringCodec
}

// NewString creates an empty string-keyed trie. By default keys are taken
// verbatim: no normalisation, case sensitive.
func NewString[V any]() *StringTrie[V] {
	c := &stringCodec{}
	return &StringTrie[V]{
		Trie:  New[rune, string, V](c),
		codec: c,
	}
}

// NewStringFromMap creates a string-keyed trie pre-populated from items.
func NewStringFromMap[V any](items map[string]V) *StringTrie[V] {
	t := NewString[V]()
	for k, v := range items {
		t.Set(k, v)
	}
	return t
}

// WithNormalisation sets the trie to strip diacritics from keys, so Jurg
// and Jürg address the same entry. Configure before inserting; keys
// already stored are not rewritten.
func (t *StringTrie[V]) WithNormalisation() *StringTrie[V] {
	t.codec.normalise = true
	return t
}

// CaseInsensitive sets the trie to lowercase keys on every operation.
// Configure before inserting; keys already stored are not rewritten.
func (t *StringTrie[V]) CaseInsensitive() *StringTrie[V] {
	t.codec.fold = true
	return t
}
