package trie

import (
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// wordPattern matches maximal runs of alphanumeric or underscore
// characters, the tokenisation rule for corpus ingestion.
var wordPattern = regexp.MustCompile(`\w+`)

// WordCountTrie is a string trie counting word occurrences in a corpus.
// Keys are case folded.
type WordCountTrie struct {
	*StringTrie[int]
}

// NewWordCount creates an empty word-count trie.
func NewWordCount() *WordCountTrie {
	return &WordCountTrie{StringTrie: NewString[int]().CaseInsensitive()}
}

// Add records one occurrence of word.
func (t *WordCountTrie) Add(word string) {
	n, err := t.Get(word)
	if err != nil {
		n = 0
	}
	t.Set(word, n+1)
}

// FromText tokenises text into words and builds a trie of their counts.
func FromText(text string) *WordCountTrie {
	t := NewWordCount()
	for _, word := range wordPattern.FindAllString(text, -1) {
		t.Add(word)
	}
	return t
}

// FromFile reads path and builds a word-count trie from its contents.
func FromFile(path string) (*WordCountTrie, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	t := FromText(string(text))
	log.Debug().Str("path", path).Int("words", t.Len()).Msg("corpus ingested")
	return t, nil
}

// FindWithinDistance returns the stored words within distance edits of
// word, using the default lowercase Latin alphabet.
func (t *WordCountTrie) FindWithinDistance(word string, distance int) (map[string]struct{}, error) {
	return NewEditor().FindWithinDistance(t, word, distance)
}
