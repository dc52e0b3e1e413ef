package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/model"
	"github.com/npillmayer/ccg/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.repl")
	defer teardown()
	//
	words := splitWords("  I|PRP like   cake| |x")
	expected := []ccg.InputWord{{Word: "I", POS: "PRP"}, {Word: "like"}, {Word: "cake|"}, {Word: "|x"}}
	if len(words) != len(expected) {
		t.Fatalf("Expected %d words, have %v", len(expected), words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("Expected word #%d to be %v, is %v", i, expected[i], w)
		}
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.repl")
	defer teardown()
	//
	reg := category.NewRegistry()
	lex, err := grammar.ReadLexicon(reg, "lexicon", []byte("I NP 0\nsleep S[dcl]\\NP 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	p := parser.NewAStar(grammar.New(reg), &model.Factory{Tagger: model.FromLexicon(lex)})
	results := p.Parse(ccg.Words("I", "sleep"))
	if len(results) != 1 {
		t.Fatalf("Expected 1 parse, have %d", len(results))
	}
	ll := leveledList(results[0].Node)
	if len(ll) != 3 || ll[0].Level != 0 || ll[1].Level != 1 || ll[2].Level != 1 {
		t.Fatalf("Expected root and two leaves, have %v", ll)
	}
	if !strings.HasPrefix(ll[0].Text, "S[dcl]") || !strings.HasSuffix(ll[2].Text, "sleep") {
		t.Errorf("Expected S[dcl] over 'I sleep', have %v", ll)
	}
}
