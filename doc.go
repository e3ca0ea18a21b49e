/*
Package trie provides a prefix tree mapping sequences of symbols to values,
with prefix queries (ancestor lookup, subtree enumeration) and an
edit-distance generator for approximate matching.

The generic Trie is parameterised over the symbol type, the external key
type and the value type; a Codec converts between external keys and symbol
sequences. StringTrie and WordCountTrie are the common rune-keyed
instantiations.

A Trie is not safe for concurrent use. Callers needing shared access must
serialise all operations externally, including iteration.
*/
package trie
