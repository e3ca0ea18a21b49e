package trie

import "errors"

var (
	// ErrNotFound is returned by Get and Delete when the key's path does
	// not exist in the tree, or (for Get) exists only as a non-value prefix.
	ErrNotFound = errors.New("key not found")

	// ErrInvalidDistance is returned by the edit-distance generator when
	// the requested distance is not a positive integer.
	ErrInvalidDistance = errors.New("edit distance must be positive")
)
