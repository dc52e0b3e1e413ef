package model

import (
	"math"
	"testing"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/chart"
	"github.com/npillmayer/ccg/combinator"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lexicon(t *testing.T, reg *category.Registry) grammar.Lexicon {
	lex, err := grammar.ReadLexicon(reg, "lexicon", []byte(`
i      NP              -0.5
like   (S[dcl]\NP)/NP  -1
like   N               -3
cake   NP              -2
NN     N               -4
`))
	if err != nil {
		t.Fatal(err)
	}
	return lex
}

func TestTagger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.model")
	defer teardown()
	//
	reg := category.NewRegistry()
	tagger := FromLexicon(lexicon(t, reg))
	words := []ccg.InputWord{{Word: "I"}, {Word: "like"}, {Word: "pie", POS: "NN"}, {Word: "pie"}}
	tags := tagger.Tag(words)
	if len(tags[0]) != 1 || tags[0][0].Category != reg.MustIntern("NP") {
		t.Errorf("Expected lower case word to be found, is %v", tags[0])
	}
	if len(tags[1]) != 2 {
		t.Errorf("Expected 2 categories for 'like', have %d", len(tags[1]))
	}
	if len(tags[2]) != 1 || tags[2][0].Score != -4 {
		t.Errorf("Expected unknown word to be tagged by POS, is %v", tags[2])
	}
	if len(tags[3]) != 0 {
		t.Errorf("Expected unknown word without POS to have no category, is %v", tags[3])
	}
}

func TestOutsideEstimates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.model")
	defer teardown()
	//
	reg := category.NewRegistry()
	f := &Factory{Tagger: FromLexicon(lexicon(t, reg))}
	words := ccg.Words("I", "like", "cake")
	m := f.NewModel(words).(*Model)
	if m.UpperBoundForWord(1) != -1 {
		t.Errorf("Expected upper bound for 'like' to be -1, is %f", m.UpperBoundForWord(1))
	}
	agenda := chart.NewAgenda()
	m.BuildAgenda(agenda, words)
	if agenda.Len() != 4 {
		t.Fatalf("Expected 4 lexical items, have %d", agenda.Len())
	}
	// every lexical item of 'like' is bounded by the best analysis of the sentence
	for !agenda.Empty() {
		it := agenda.Pop()
		if it.Cost() > -3.5+1e-9 {
			t.Errorf("Expected cost of %s to be at most -3.5, is %f", it, it.Cost())
		}
		if it.Start() == 1 && math.Abs(it.Outside()-(-2.5)) > 1e-9 {
			t.Errorf("Expected outside of word #1 to be -2.5, is %f", it.Outside())
		}
	}
}

func TestCombineAndUnary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.model")
	defer teardown()
	//
	reg := category.NewRegistry()
	f := &Factory{Tagger: FromLexicon(lexicon(t, reg))}
	words := ccg.Words("I", "like", "cake")
	m := f.NewModel(words)
	agenda := chart.NewAgenda()
	m.BuildAgenda(agenda, words)
	var verb, object *chart.Item
	for !agenda.Empty() {
		it := agenda.Pop()
		switch {
		case it.Start() == 1 && it.Category().IsFunctor():
			verb = it
		case it.Start() == 2:
			object = it
		}
	}
	prods := combinator.GetRules(verb.Category(), object.Category(), combinator.Standard())
	if len(prods) != 1 {
		t.Fatalf("Expected a single production, have %d", len(prods))
	}
	vp := m.CombineNodes(verb, object, tree.NewBinary(verb.Node(), object.Node(), prods[0], nil))
	if vp.Inside() != -3 || vp.Outside() != -0.5 || vp.Start() != 1 || vp.Length() != 2 {
		t.Errorf("Expected VP item (1…3) with scores -3/-0.5, is %s", vp)
	}
	rule := combinator.NewUnaryRule(object.Category(), reg.MustIntern(`S/(S\NP)`), "")
	raised := m.Unary(object, tree.NewUnary(object.Node(), rule), rule)
	if raised.Inside() != object.Inside() || raised.Cost() != object.Cost() {
		t.Errorf("Expected unary item to score like its child, is %s", raised)
	}
}

func TestBeam(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.model")
	defer teardown()
	//
	reg := category.NewRegistry()
	f := &Factory{Tagger: FromLexicon(lexicon(t, reg)), Beam: 0.5}
	m := f.NewModel(ccg.Words("like")).(*Model)
	if len(m.tags[0]) != 1 {
		t.Errorf("Expected beam to prune unlikely category, have %v", m.tags[0])
	}
}
