package model

import (
	"strings"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/grammar"
)

// ScoredCategory is a lexical category of a word together with its log-probability.
type ScoredCategory struct {
	Category *category.Category
	Score    float64
}

// Tagger assigns lexical categories to the words of a sentence.
type Tagger interface {
	Tag(words []ccg.InputWord) [][]ScoredCategory
}

type lexiconTagger struct {
	lex grammar.Lexicon
}

// FromLexicon creates a tagger which looks up words in a lexicon. A word is looked up
// as is, then in lower case, then by its POS tag.
func FromLexicon(lex grammar.Lexicon) Tagger {
	return lexiconTagger{lex: lex}
}

func (t lexiconTagger) Tag(words []ccg.InputWord) [][]ScoredCategory {
	tags := make([][]ScoredCategory, len(words))
	for i, w := range words {
		entries, ok := t.lex[w.Word]
		if !ok {
			entries, ok = t.lex[strings.ToLower(w.Word)]
		}
		if !ok && w.POS != "" {
			entries = t.lex[w.POS]
		}
		if len(entries) == 0 {
			tracer().Infof("no lexical category for word #%d '%s'", i, w)
		}
		tags[i] = make([]ScoredCategory, len(entries))
		for j, e := range entries {
			tags[i][j] = ScoredCategory{Category: e.Category, Score: e.LogProb}
		}
	}
	return tags
}
