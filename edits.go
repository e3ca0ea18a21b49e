package trie

// DefaultDistance is the edit distance used by the approximate-match
// convenience methods when the caller does not pick one.
const DefaultDistance = 2

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Editor generates the candidate strings reachable from a word by a fixed
// number of single-character edits (delete, transpose, substitute,
// insert). Substitutions and insertions draw from the Editor's alphabet.
type Editor struct {
	alphabet []rune
}

// NewEditor creates an Editor over the lowercase Latin alphabet.
func NewEditor() *Editor {
	return &Editor{alphabet: []rune(defaultAlphabet)}
}

// WithAlphabet sets the symbols used for substitutions and insertions.
func (e *Editor) WithAlphabet(alphabet string) *Editor {
	e.alphabet = []rune(alphabet)
	return e
}

// Edits1 returns the set of distinct strings exactly one edit away from
// word: one character deleted, two adjacent characters transposed, one
// character substituted, or one alphabet character inserted at any
// position. Note that substituting a character with itself regenerates
// word, so word is a member of its own edit set.
func (e *Editor) Edits1(word string) map[string]struct{} {
	chars := []rune(word)
	out := make(map[string]struct{}, (len(chars)+1)*(2*len(e.alphabet)+2))
	for i := 0; i <= len(chars); i++ {
		left, right := chars[:i], chars[i:]
		if len(right) > 0 {
			// delete
			out[string(left)+string(right[1:])] = struct{}{}
		}
		if len(right) > 1 {
			// transpose
			out[string(left)+string(right[1])+string(right[0])+string(right[2:])] = struct{}{}
		}
		for _, c := range e.alphabet {
			if len(right) > 0 {
				// substitute
				out[string(left)+string(c)+string(right[1:])] = struct{}{}
			}
			// insert
			out[string(left)+string(c)+string(right)] = struct{}{}
		}
	}
	return out
}

// EditsN returns the set of distinct strings reachable from word by
// applying exactly distance single edits in sequence. A result reachable
// via several edit paths appears once. Returns ErrInvalidDistance when
// distance is not positive; exact matching belongs to Contains, not here.
func (e *Editor) EditsN(word string, distance int) (map[string]struct{}, error) {
	if distance <= 0 {
		return nil, ErrInvalidDistance
	}
	current := e.Edits1(word)
	for i := 1; i < distance; i++ {
		next := make(map[string]struct{}, len(current))
		for w := range current {
			for edited := range e.Edits1(w) {
				next[edited] = struct{}{}
			}
		}
		current = next
	}
	return current, nil
}

// Container is the membership view of a string-keyed trie, the only part
// approximate matching needs.
type Container interface {
	Contains(key string) bool
}

// FindWithinDistance returns the candidate strings within distance edits
// of word that are stored as complete keys in t. The candidate set is
// generated independently of the tree and filtered through Contains, so
// cost grows with the combinatorial edit set, not with the tree size.
func (e *Editor) FindWithinDistance(t Container, word string, distance int) (map[string]struct{}, error) {
	candidates, err := e.EditsN(word, distance)
	if err != nil {
		return nil, err
	}
	found := make(map[string]struct{})
	for w := range candidates {
		if t.Contains(w) {
			found[w] = struct{}{}
		}
	}
	return found, nil
}
