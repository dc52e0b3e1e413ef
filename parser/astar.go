package parser

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/chart"
	"github.com/npillmayer/ccg/grammar"
)

// AStar is an agenda-driven parser. Items are popped best first, where the score of
// an item is its inside score plus an upper bound of the outside score. Provided the
// model's outside estimates are admissible, the first complete parse is the best one.
type AStar struct {
	parser
}

var _ Parser = (*AStar)(nil)

// NewAStar creates an A* parser for grammar g.
func NewAStar(g *grammar.Grammar, factory ModelFactory, opts ...Option) *AStar {
	return &AStar{parser: newParser(g, factory, opts)}
}

func (p *AStar) cells() chart.CellFactory {
	switch {
	case p.conf.nbest > 1 && p.conf.dedup:
		return chart.NewCellNBestHashed(p.conf.nbest)
	case p.conf.nbest > 1:
		return chart.NewCellNBest(p.conf.nbest)
	}
	return chart.NewCell1Best
}

// Parse parses a sentence. It returns up to n parses, best first, or nil if no parse
// could be found.
func (p *AStar) Parse(words []ccg.InputWord) []Result {
	if !p.accepts(words) {
		return nil
	}
	s := p.begin(words, p.cells())
	agenda := chart.NewAgenda()
	s.model.BuildAgenda(agenda, words)
	var results []Result
	var best float64
	found := hashset.New()
	for !agenda.Empty() {
		if len(results) >= p.conf.nbest && agenda.Peek().Cost() <= p.conf.beam*best {
			break
		}
		item := agenda.Pop()
		if !s.chart.Add(item) {
			continue
		}
		if s.chart.Size() > p.conf.maxChart {
			return p.abort("chart size exceeds %d", p.conf.maxChart)
		}
		if s.isResult(item) {
			if key := p.resultKey(item); !found.Contains(key) {
				found.Add(key)
				if len(results) == 0 {
					best = item.Inside()
				}
				tracer().Debugf("result #%d: %s", len(results), item)
				results = append(results, Result{Node: item.Node(), Score: item.Inside()})
			}
		}
		for _, u := range s.unary(item) {
			agenda.Push(u)
		}
		s.neighbours(item, agenda.Push)
	}
	tracer().Debugf("%d items pushed to agenda", agenda.Pushed())
	return s.finish(results)
}

// resultKey identifies a parse for the purpose of n-best uniqueness.
func (p *AStar) resultKey(item *chart.Item) string {
	if p.conf.trackDeps {
		return fmt.Sprintf("%d/%x", item.Category().ID(), item.Node().DepHash())
	}
	return item.Node().String()
}

// neighbours combines item with all the items in the chart adjacent to it.
func (s *sentence) neighbours(item *chart.Item, push func(*chart.Item)) {
	span, n := item.Span(), len(s.words)
	start, end := span.From(), span.To()
	for length := 1; end+length <= n; length++ {
		if cell := s.chart.Peek(end, length); cell != nil {
			for _, right := range cell.Items() {
				for _, c := range s.combine(item, right) {
					push(c)
				}
			}
		}
	}
	for length := 1; length <= start; length++ {
		if cell := s.chart.Peek(start-length, length); cell != nil {
			for _, left := range cell.Items() {
				for _, c := range s.combine(left, item) {
					push(c)
				}
			}
		}
	}
}
