package parser_test

import (
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/model"
	"github.com/npillmayer/ccg/parser"
	"github.com/npillmayer/ccg/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const simpleLexicon = `
I     NP              0
like  (S[dcl]\NP)/NP  0
cake  NP              0
`

// 'her duck' is either a noun phrase or a small clause.
const ambiguousLexicon = `
I     NP                            -0.1
saw   (S[dcl]\NP)/NP                -0.1
saw   ((S[dcl]\NP)/(S[b]\NP))/NP    -2.0
her   NP/N                          -0.5
her   NP                            -1.0
duck  N                             -0.3
duck  S[b]\NP                       -1.5
`

func setup(t *testing.T, lexicon string) (*grammar.Grammar, *model.Factory) {
	reg := category.NewRegistry()
	g := grammar.New(reg)
	g.Roots = append(g.Roots, reg.MustIntern("S[dcl]"))
	lex, err := grammar.ReadLexicon(reg, "lexicon", []byte(lexicon))
	if err != nil {
		t.Fatal(err)
	}
	return g, &model.Factory{Tagger: model.FromLexicon(lex)}
}

func drivers(g *grammar.Grammar, f parser.ModelFactory, opts ...parser.Option) map[string]parser.Parser {
	return map[string]parser.Parser{
		"A*":  parser.NewAStar(g, f, opts...),
		"CKY": parser.NewCKY(g, f, opts...),
	}
}

func TestSimpleSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, simpleLexicon)
	for name, p := range drivers(g, f) {
		results := p.Parse(ccg.Words("I", "like", "cake"))
		if len(results) != 1 {
			t.Fatalf("%s: expected 1 parse, have %d", name, len(results))
		}
		root := results[0].Node
		if root.Category().String() != "S[dcl]" || root.Head() != 1 || root.Length() != 3 {
			t.Errorf("%s: expected S[dcl] headed by 'like', is %s", name, root)
		}
		if results[0].Score != 0 {
			t.Errorf("%s: expected score to be 0, is %f", name, results[0].Score)
		}
		if leaves := tree.Leaves(root); len(leaves) != 3 || leaves[2].Word().Word != "cake" {
			t.Errorf("%s: expected 3 leaves, is %v", name, leaves)
		}
	}
}

func TestTypeRaisingIsNormalized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, simpleLexicon)
	reg := g.Registry
	g.Unary.Add(reg.MustIntern("NP"), reg.MustIntern(`S/(S\NP)`), "")
	for name, p := range drivers(g, f, parser.NBest(5, 1.0)) {
		results := p.Parse(ccg.Words("I", "like", "cake"))
		if len(results) != 1 {
			t.Errorf("%s: expected a single normal-form parse, have %v", name, results)
		}
	}
}

func TestAmbiguousSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, ambiguousLexicon)
	words := ccg.Words("I", "saw", "her", "duck")
	astar := parser.NewAStar(g, f).Parse(words)
	cky := parser.NewCKY(g, f).Parse(words)
	if len(astar) != 1 || len(cky) != 1 {
		t.Fatalf("Expected one parse from each parser, have %d and %d", len(astar), len(cky))
	}
	if astar[0].Node.String() != cky[0].Node.String() || astar[0].Score != cky[0].Score {
		t.Errorf("Expected A* and CKY to agree, are %s and %s", astar[0], cky[0])
	}
	if math.Abs(astar[0].Score-(-1.0)) > 1e-9 {
		t.Errorf("Expected best score to be -1.0, is %f", astar[0].Score)
	}
	if right := astar[0].Node.Children()[1]; right.Category().String() != `S[dcl]\NP` {
		t.Errorf("Expected verb phrase, is %s", right)
	}
}

func TestNBest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, ambiguousLexicon)
	words := ccg.Words("I", "saw", "her", "duck")
	for name, p := range drivers(g, f, parser.NBest(3, 1.0)) {
		results := p.Parse(words)
		if len(results) != 2 {
			t.Fatalf("%s: expected 2 parses, have %d", name, len(results))
		}
		if math.Abs(results[0].Score-(-1.0)) > 1e-9 || math.Abs(results[1].Score-(-4.6)) > 1e-9 {
			t.Errorf("%s: expected scores -1.0 and -4.6, are %v", name, results)
		}
		if results[0].Node.String() == results[1].Node.String() {
			t.Errorf("%s: expected parses to differ", name)
		}
	}
}

func TestBeamSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, ambiguousLexicon)
	results := parser.NewCKY(g, f, parser.BeamSize(1)).Parse(ccg.Words("I", "saw", "her", "duck"))
	if len(results) != 1 || math.Abs(results[0].Score-(-1.0)) > 1e-9 {
		t.Errorf("Expected beam search to find the best parse, have %v", results)
	}
}

func TestDependencies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, simpleLexicon)
	f.TrackDependencies = true
	for name, p := range drivers(g, f, parser.TrackDependencies(true)) {
		results := p.Parse(ccg.Words("I", "like", "cake"))
		if len(results) != 1 {
			t.Fatalf("%s: expected 1 parse, have %d", name, len(results))
		}
		deps := tree.Dependencies(results[0].Node)
		if len(deps) != 2 {
			t.Fatalf("%s: expected 2 dependencies, have %v", name, deps)
		}
		args := map[int]bool{}
		for _, d := range deps {
			if d.Head != 1 {
				t.Errorf("%s: expected 'like' to be head of %s", name, d)
			}
			args[d.Argument] = true
		}
		if !args[0] || !args[2] {
			t.Errorf("%s: expected 'I' and 'cake' to be arguments, have %v", name, deps)
		}
		if results[0].Node.DepHash() == 0 {
			t.Errorf("%s: expected a dependency hash", name)
		}
	}
}

func TestParseFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, simpleLexicon)
	for name, p := range drivers(g, f, parser.MaxSentenceLength(2)) {
		if results := p.Parse(ccg.Words("I", "like", "cake")); results != nil {
			t.Errorf("%s: expected too long sentence to fail", name)
		}
		if results := p.Parse(nil); results != nil {
			t.Errorf("%s: expected empty sentence to fail", name)
		}
	}
	for name, p := range drivers(g, f) {
		if results := p.Parse(ccg.Words("I", "like", "pie")); results != nil {
			t.Errorf("%s: expected unknown word to fail", name)
		}
		if results := p.Parse(ccg.Words("like", "I", "cake")); results != nil {
			t.Errorf("%s: expected ungrammatical sentence to fail, is %v", name, results)
		}
	}
	for name, p := range drivers(g, f, parser.MaxChartSize(2)) {
		if results := p.Parse(ccg.Words("I", "like", "cake")); results != nil {
			t.Errorf("%s: expected chart overflow to fail", name)
		}
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	// all goroutines would trace to the same *testing.T
	for _, key := range []string{"ccg.parser", "ccg.model", "ccg.chart", "ccg.tree", "ccg.combinator"} {
		tracing.Select(key).SetTraceLevel(tracing.LevelError)
	}
	//
	g, f := setup(t, ambiguousLexicon)
	p := parser.NewAStar(g, f)
	words := ccg.Words("I", "saw", "her", "duck")
	expected := p.Parse(words)[0].Node.String()
	var wg sync.WaitGroup
	trees := make([]string, 8)
	for i := range trees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if results := p.Parse(words); len(results) > 0 {
				trees[i] = results[0].Node.String()
			}
		}(i)
	}
	wg.Wait()
	for i, tr := range trees {
		if tr != expected {
			t.Errorf("Expected parse #%d to be %s, is %s", i, expected, tr)
		}
	}
}

func TestUnaryChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	g, f := setup(t, `
a  N/N   0
a  NP/N  -1
b  N     -1
`)
	reg := g.Registry
	g.Unary.Add(reg.MustIntern("N"), reg.MustIntern("NP"), "")
	g.Unary.Add(reg.MustIntern("NP"), reg.MustIntern("S[dcl]"), "")
	g.Unary.Add(reg.MustIntern("S[dcl]"), reg.MustIntern("N"), "") // would close a cycle
	words := ccg.Words("a", "b")
	astar := parser.NewAStar(g, f).Parse(words)
	cky := parser.NewCKY(g, f).Parse(words)
	if len(astar) != 1 || len(cky) != 1 {
		t.Fatalf("Expected one parse from each parser, have %v and %v", astar, cky)
	}
	expected := `(S[dcl] (NP (N (N/N a) (N b))))`
	for name, r := range map[string]parser.Result{"A*": astar[0], "CKY": cky[0]} {
		if r.Node.String() != expected {
			t.Errorf("%s: expected %s, is %s", name, expected, r.Node)
		}
		if math.Abs(r.Score-(-1.0)) > 1e-9 {
			t.Errorf("%s: expected score -1.0, is %f", name, r.Score)
		}
	}
}

// ruleTypes collects the names of the rule types of all inner nodes of a tree.
type ruleTypes map[string]bool

func (rt ruleTypes) EnterNode(n tree.Node, ctxt tree.NodeCtxt) bool {
	rt[n.RuleType().String()] = true
	return true
}

func (rt ruleTypes) ExitNode(tree.Node, []interface{}, tree.NodeCtxt) interface{} {
	return nil
}

func (rt ruleTypes) Leaf(*tree.Leaf, tree.NodeCtxt) interface{} {
	return nil
}

func TestPunctuationAndSpecialRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.parser")
	defer teardown()
	//
	lexicon := simpleLexicon + `
today  NP  0
,      ,   0
.      .   0
`
	tests := []struct {
		name    string
		words   []string
		unary   string
		seen    string
		special string
		parses  int    // -1 for at least one
		root    string // rule type of the root of every parse, if set
		uses    string // rule type present in the best parse
		never   string // rule type absent from every parse
	}{
		{name: "full stop", words: []string{"I", "like", "cake", "."},
			parses: 1, root: "RP", uses: "RP", never: "LP"},
		{name: "leading comma", words: []string{",", "I", "like", "cake"},
			parses: -1, uses: "LP", never: "SPECIAL"},
		{name: "inner comma", words: []string{"I", ",", "like", "cake"},
			parses: 1, root: "BA", uses: "RP", never: "LP"},
		{name: "special rule", words: []string{"I", "like", "cake", "today"},
			special: "S[dcl] NP S[dcl] left",
			parses:  1, root: "SPECIAL", uses: "SPECIAL", never: "LP"},
		{name: "special rule seen", words: []string{"I", "like", "cake", "today"},
			special: "S[dcl] NP S[dcl] left", seen: "NP/N N\nS[dcl] NP",
			parses:  1, root: "SPECIAL", uses: "SPECIAL", never: "LP"},
		{name: "special rule unseen", words: []string{"I", "like", "cake", "today"},
			special: "S[dcl] NP S[dcl] left", seen: "NP/N N",
			parses:  0},
		{name: "type change over punctuation", words: []string{"cake", "."},
			unary:  "NP S[dcl]",
			parses: 1, root: "RP", uses: "UNARY", never: "LP"},
		{name: "type raising over punctuation", words: []string{"cake", "."},
			unary:  `NP S[dcl]/(S[dcl]\NP)`,
			parses: 2, uses: "RP", never: "LP"},
	}
	for _, test := range tests {
		g, f := setup(t, lexicon)
		g.Roots = append(g.Roots, g.Registry.MustIntern(`S[dcl]/(S[dcl]\NP)`))
		if err := g.ReadUnaryRules(grammar.UnaryRulesFile, []byte(test.unary)); err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if err := g.ReadSpecialRules(grammar.SpecialRulesFile, []byte(test.special)); err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if test.seen != "" {
			if err := g.ReadSeenRules(grammar.SeenRulesFile, []byte(test.seen)); err != nil {
				t.Fatalf("%s: %v", test.name, err)
			}
		}
		for name, p := range drivers(g, f, parser.NBest(10, 1.0)) {
			results := p.Parse(ccg.Words(test.words...))
			if test.parses < 0 && len(results) == 0 {
				t.Errorf("%s/%s: expected a parse", test.name, name)
				continue
			}
			if test.parses >= 0 && len(results) != test.parses {
				t.Errorf("%s/%s: expected %d parses, have %v", test.name, name, test.parses, results)
				continue
			}
			for i, r := range results {
				if test.root != "" && r.Node.RuleType().String() != test.root {
					t.Errorf("%s/%s: expected root of parse #%d to be %s, is %s",
						test.name, name, i, test.root, r.Node)
				}
				rt := ruleTypes{}
				tree.Walk(r.Node, 0, rt)
				if rt[test.never] {
					t.Errorf("%s/%s: expected %s to be absent from %s", test.name, name, test.never, r.Node)
				}
				if i == 0 && !rt[test.uses] {
					t.Errorf("%s/%s: expected %s in %s", test.name, name, test.uses, r.Node)
				}
			}
		}
	}
}
