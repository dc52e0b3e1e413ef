package model

import (
	"math"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/chart"
	"github.com/npillmayer/ccg/combinator"
	"github.com/npillmayer/ccg/deps"
	"github.com/npillmayer/ccg/parser"
	"github.com/npillmayer/ccg/tree"
)

// Factory creates a supertag-factored model per sentence. A factory is read-only and
// may be shared between parsers.
type Factory struct {
	Tagger            Tagger
	TrackDependencies bool    // attach dependency structures to leaves
	Beam              float64 // drop categories with p < Beam·p(best) of a word; 0 keeps all
}

var _ parser.ModelFactory = (*Factory)(nil)

// NewModel tags words and precomputes the outside estimates of all spans.
func (f *Factory) NewModel(words []ccg.InputWord) parser.Model {
	tags := f.Tagger.Tag(words)
	m := &Model{
		tags:     make([][]ScoredCategory, len(words)),
		best:     make([]float64, len(words)),
		left:     make([]float64, len(words)+1),
		right:    make([]float64, len(words)+1),
		tracking: f.TrackDependencies,
	}
	for i := range words {
		if i < len(tags) {
			m.tags[i] = prune(tags[i], f.Beam)
		}
		m.best[i] = math.Inf(-1)
		for _, t := range m.tags[i] {
			if t.Score > m.best[i] {
				m.best[i] = t.Score
			}
		}
	}
	for i := range words {
		m.left[i+1] = m.left[i] + m.best[i]
	}
	for i := len(words) - 1; i >= 0; i-- {
		m.right[i] = m.right[i+1] + m.best[i]
	}
	return m
}

func prune(tags []ScoredCategory, beam float64) []ScoredCategory {
	if beam <= 0 || len(tags) == 0 {
		return tags
	}
	best := math.Inf(-1)
	for _, t := range tags {
		best = math.Max(best, t.Score)
	}
	threshold := best + math.Log(beam)
	pruned := make([]ScoredCategory, 0, len(tags))
	for _, t := range tags {
		if t.Score >= threshold {
			pruned = append(pruned, t)
		}
	}
	return pruned
}

// Model scores the items of a single sentence.
type Model struct {
	tags        [][]ScoredCategory
	best        []float64 // best lexical score per word
	left, right []float64 // prefix and suffix sums of best
	tracking    bool
}

var _ parser.Model = (*Model)(nil)

// outside is the sum of the best scores of the words outside of a span.
func (m *Model) outside(start, length int) float64 {
	return m.left[start] + m.right[start+length]
}

// BuildAgenda pushes an item for every lexical category of every word.
func (m *Model) BuildAgenda(agenda *chart.Agenda, words []ccg.InputWord) {
	for i, w := range words {
		for _, t := range m.tags[i] {
			var s deps.Structure
			if m.tracking {
				s = deps.Leaf(i, t.Category)
			}
			leaf := tree.NewLeaf(w, i, t.Category, s)
			agenda.Push(chart.NewItem(leaf, t.Score, m.outside(i, 1), i, 1, m.tracking))
		}
	}
	tracer().Debugf("agenda seeded with %d lexical items", agenda.Len())
}

// CombineNodes scores node as the sum of the scores of its children.
func (m *Model) CombineNodes(left, right *chart.Item, node tree.Node) *chart.Item {
	length := left.Length() + right.Length()
	return chart.NewItem(node, left.Inside()+right.Inside(), m.outside(left.Start(), length),
		left.Start(), length, m.tracking)
}

// Unary scores node the same as its child.
func (m *Model) Unary(child *chart.Item, node tree.Node, rule *combinator.UnaryRule) *chart.Item {
	return chart.NewItem(node, child.Inside(), child.Outside(), child.Start(), child.Length(), m.tracking)
}

// UpperBoundForWord is the best lexical score of word i.
func (m *Model) UpperBoundForWord(i int) float64 {
	return m.best[i]
}
