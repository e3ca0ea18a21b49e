package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	trie "github.com/sarthakjha889/go-prefix-trie"
)

// triedemo builds a word-count trie from a corpus file and answers prefix
// and approximate-match queries given as arguments.
//
// Configuration (file triedemo.yaml in the working directory, or
// environment variables):
//
//	corpus    path to the corpus text file
//	snapshot  optional snapshot path; loaded if present, written after ingest
//	distance  edit distance for approximate matches
//	debug     enable debug logging
func main() {
	v := viper.New()
	v.SetDefault("corpus", "corpus.txt")
	v.SetDefault("snapshot", "")
	v.SetDefault("distance", trie.DefaultDistance)
	v.SetDefault("debug", false)
	v.SetConfigName("triedemo")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("failed to read config")
		}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if v.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	t, err := loadTrie(v.GetString("corpus"), v.GetString("snapshot"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build trie")
	}
	log.Info().Int("words", t.Len()).Msg("trie ready")

	distance := v.GetInt("distance")
	for _, query := range os.Args[1:] {
		runQuery(t, query, distance)
	}
}

func loadTrie(corpus, snapshot string) (*trie.WordCountTrie, error) {
	if snapshot != "" {
		if t, err := trie.LoadWordCountFile(snapshot); err == nil {
			return t, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("snapshot unreadable, rebuilding from corpus")
		}
	}
	t, err := trie.FromFile(corpus)
	if err != nil {
		return nil, err
	}
	if snapshot != "" {
		if err := t.SaveFile(snapshot); err != nil {
			log.Warn().Err(err).Msg("failed to write snapshot")
		}
	}
	return t, nil
}

func runQuery(t *trie.WordCountTrie, query string, distance int) {
	fmt.Printf("query %q\n", query)

	for prefix, count := range t.IterPrefixes(query) {
		fmt.Printf("  prefix %-12s count %d\n", prefix, count)
	}

	if keys, ok := t.FindPrefix(query); ok {
		fmt.Printf("  completions: %v\n", keys)
	}

	matches, err := t.FindWithinDistance(query, distance)
	if err != nil {
		log.Error().Err(err).Msg("approximate match failed")
		return
	}
	words := make([]string, 0, len(matches))
	for w := range matches {
		words = append(words, w)
	}
	sort.Strings(words)
	fmt.Printf("  within %d edits: %v\n", distance, words)
}
