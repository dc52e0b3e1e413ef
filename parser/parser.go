package parser

import (
	"fmt"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/chart"
	"github.com/npillmayer/ccg/combinator"
	"github.com/npillmayer/ccg/deps"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/normalform"
	"github.com/npillmayer/ccg/tree"
	"github.com/npillmayer/schuko/gconf"
	"golang.org/x/exp/slices"
)

// Model scores the items of a single sentence. Scores are log-probabilities or
// similar, higher is better.
type Model interface {
	// BuildAgenda pushes the lexical items of all the words.
	BuildAgenda(agenda *chart.Agenda, words []ccg.InputWord)
	// CombineNodes creates an item for node, which has been built from left and right.
	CombineNodes(left, right *chart.Item, node tree.Node) *chart.Item
	// Unary creates an item for node, which has been built from child by rule.
	Unary(child *chart.Item, node tree.Node, rule *combinator.UnaryRule) *chart.Item
	// UpperBoundForWord is the best score any lexical item of word i may have.
	UpperBoundForWord(i int) float64
}

// ModelFactory creates a model for a sentence.
type ModelFactory interface {
	NewModel(words []ccg.InputWord) Model
}

// Result is a complete parse of a sentence.
type Result struct {
	Node  tree.Node
	Score float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.4f %s", r.Score, r.Node)
}

// Parser is the common interface of the parsing drivers.
type Parser interface {
	// Parse returns the best parses of a sentence, best first, or nil.
	Parse(words []ccg.InputWord) []Result
}

// --- Shared driver ---------------------------------------------------------

type parser struct {
	grammar *grammar.Grammar
	factory ModelFactory
	conf    config
}

func newParser(g *grammar.Grammar, factory ModelFactory, opts []Option) parser {
	p := parser{grammar: g, factory: factory, conf: defaults()}
	for _, option := range opts {
		option(&p.conf)
	}
	return p
}

// accepts is false for sentences which will not be parsed at all.
func (p *parser) accepts(words []ccg.InputWord) bool {
	if len(words) == 0 {
		tracer().Infof("empty sentence")
		return false
	}
	if len(words) > p.conf.maxLength {
		tracer().Infof("sentence of length %d exceeds maximum of %d", len(words), p.conf.maxLength)
		return false
	}
	return true
}

// abort gives up parsing a sentence.
func (p *parser) abort(format string, args ...interface{}) []Result {
	msg := fmt.Sprintf(format, args...)
	tracer().Infof("parse failed: %s", msg)
	if gconf.GetBool("panic-on-parse-failure") {
		panic(`CCG parser failed.

Configuration flag panic-on-parse-failure is set to true. It is aimed at helping
to debug a grammar or model and do a post-mortem of why parsing failed. However,
if this is a production environment and you did not expect this to panic, please
unset panic-on-parse-failure to its default (false).

` + msg)
	}
	return nil
}

// sentence holds the state of parsing a single sentence.
type sentence struct {
	*parser
	words  []ccg.InputWord
	model  Model
	chart  *chart.Chart
	rules  *combinator.Cache
	hasher *deps.Hasher // nil if dependencies are not tracked
}

func (p *parser) begin(words []ccg.InputWord, cells chart.CellFactory) *sentence {
	s := &sentence{
		parser: p,
		words:  words,
		model:  p.factory.NewModel(words),
		chart:  chart.New(len(words), cells),
		rules:  combinator.NewCache(p.grammar.Combinators),
	}
	if p.conf.trackDeps {
		s.hasher = deps.NewHasher()
	}
	return s
}

// combine creates the items for all the productions of left and right.
func (s *sentence) combine(left, right *chart.Item) []*chart.Item {
	l, r := left.Category(), right.Category()
	if !s.grammar.Seen.IsSeen(l, r) {
		return nil
	}
	var items []*chart.Item
	for _, prod := range s.rules.Rules(l, r) {
		if !normalform.IsOk(left.Node().RuleClass(), right.Node().RuleClass(), prod.Type,
			l, r, prod.Result, left.Start() == 0) {
			continue
		}
		node := tree.NewBinary(left.Node(), right.Node(), prod, s.hasher)
		items = append(items, s.model.CombineNodes(left, right, node))
	}
	return items
}

// unary creates the items for all the unary rules applicable to item. A rule is
// skipped if its result already occurs on the chain of unary nodes ending in item,
// which bounds the unary closure. Over punctuation removal, only type-raising is
// allowed.
func (s *sentence) unary(item *chart.Item) []*chart.Item {
	node := item.Node()
	base := node
	for base.RuleType().IsUnary() {
		base = base.Children()[0]
	}
	punct := base.RuleType() == combinator.LP || base.RuleType() == combinator.RP
	var items []*chart.Item
	for _, rule := range s.grammar.Unary.For(item.Category()) {
		if punct && !rule.IsTypeRaising() {
			continue
		}
		if onUnaryChain(node, rule.To) {
			continue
		}
		u := tree.NewUnary(node, rule)
		items = append(items, s.model.Unary(item, u, rule))
	}
	return items
}

// onUnaryChain is true if c is the category of node or of one of the nodes below it,
// following unary nodes only.
func onUnaryChain(node tree.Node, c *category.Category) bool {
	for {
		if node.Category() == c {
			return true
		}
		if !node.RuleType().IsUnary() {
			return false
		}
		node = node.Children()[0]
	}
}

// isResult is true for items spanning the whole sentence with a root category.
func (s *sentence) isResult(item *chart.Item) bool {
	span := item.Span()
	return span.From() == 0 && span.Len() == len(s.words) && s.grammar.IsRoot(item.Category())
}

func (s *sentence) finish(results []Result) []Result {
	pairs, hits := s.rules.Stats()
	tracer().Debugf("chart size %d, %d category pairs, %d rule cache hits", s.chart.Size(), pairs, hits)
	if len(results) == 0 {
		return s.abort("no parse found for sentence of length %d", len(s.words))
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if len(results) > s.conf.nbest {
		results = results[:s.conf.nbest]
	}
	tracer().Infof("%d parse(s), best score %.4f", len(results), results[0].Score)
	return results
}
