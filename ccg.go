package ccg

import "fmt"

// --- Input words -----------------------------------------------------------

// InputWord is a word of a sentence to parse. Tokenization and POS tagging are done
// by clients; the parser never looks at the word form, but models usually do.
//
// An example would be
//
//    Word = "cake"
//    POS  = "NN"
//    NER  = "O"      // optional
//
type InputWord struct {
	Word string
	POS  string
	NER  string
}

// Words is a shortcut to create input words without tags.
func Words(words ...string) []InputWord {
	w := make([]InputWord, len(words))
	for i, word := range words {
		w[i] = InputWord{Word: word}
	}
	return w
}

func (w InputWord) String() string {
	if w.POS == "" {
		return w.Word
	}
	return w.Word + "|" + w.POS
}

// --- Spans ------------------------------------------------------------

// Span is a run of input words (x…y), from position x up to, but not including,
// position y. Parse trees and chart items cover spans.
type Span [2]int

// SpanOf creates the span of length words starting at start.
func SpanOf(start, length int) Span {
	return Span{start, start + length}
}

// From is the position of the first word covered.
func (s Span) From() int { return s[0] }

// To is the position behind the last word covered.
func (s Span) To() int { return s[1] }

// Len counts the words covered.
func (s Span) Len() int { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
