package parser

import (
	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/chart"
	"github.com/npillmayer/ccg/grammar"
)

// CKY is a bottom-up chart parser. Cells are filled in order of increasing span
// length; every split of a span is tried.
type CKY struct {
	parser
}

var _ Parser = (*CKY)(nil)

// NewCKY creates a CKY parser for grammar g.
func NewCKY(g *grammar.Grammar, factory ModelFactory, opts ...Option) *CKY {
	return &CKY{parser: newParser(g, factory, opts)}
}

func (p *CKY) cells() chart.CellFactory {
	switch {
	case p.conf.nbest > 1 && p.conf.dedup:
		return chart.NewCellNBestHashed(p.conf.nbest)
	case p.conf.nbest > 1:
		return chart.NewCellNBest(p.conf.nbest)
	case p.conf.beamSize > 0:
		return chart.NewCellNoDynamicProgram(p.conf.beamSize)
	}
	return chart.NewCell1BestCKY
}

// Parse parses a sentence. It returns up to n parses, best first, or nil if no parse
// could be found.
func (p *CKY) Parse(words []ccg.InputWord) []Result {
	if !p.accepts(words) {
		return nil
	}
	n := len(words)
	s := p.begin(words, p.cells())
	agenda := chart.NewAgenda()
	s.model.BuildAgenda(agenda, words)
	for !agenda.Empty() {
		s.chart.Add(agenda.Pop())
	}
	for i := 0; i < n; i++ {
		cell := s.chart.Peek(i, 1)
		if cell == nil || cell.Len() == 0 {
			return p.abort("no lexical category for word #%d '%s'", i, words[i])
		}
		s.unaryClosure(cell)
	}
	for length := 2; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			for split := 1; split < length; split++ {
				left, right := s.chart.Peek(start, split), s.chart.Peek(start+split, length-split)
				if left == nil || right == nil {
					continue
				}
				for _, l := range left.Items() {
					for _, r := range right.Items() {
						for _, item := range s.combine(l, r) {
							s.chart.Add(item)
						}
					}
				}
			}
			if cell := s.chart.Peek(start, length); cell != nil {
				s.unaryClosure(cell)
			}
			if s.chart.Size() > p.conf.maxChart {
				return p.abort("chart size exceeds %d", p.conf.maxChart)
			}
		}
	}
	var results []Result
	if top := s.chart.Peek(0, n); top != nil {
		for _, item := range top.Items() {
			if s.isResult(item) {
				results = append(results, Result{Node: item.Node(), Score: item.Inside()})
			}
		}
	}
	return s.finish(results)
}

// unaryClosure adds unary items to a cell until no more arrive. Only items which are
// still live in the cell are expanded; an item displaced by a better one of its
// class is dropped.
func (s *sentence) unaryClosure(cell chart.Cell) {
	expanded := make(map[*chart.Item]bool)
	for {
		var next *chart.Item
		for _, item := range cell.Items() {
			if !expanded[item] {
				next = item
				break
			}
		}
		if next == nil {
			return
		}
		expanded[next] = true
		for _, u := range s.unary(next) {
			s.chart.Add(u)
		}
	}
}
