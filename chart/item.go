package chart

import (
	"fmt"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/combinator"
	"github.com/npillmayer/ccg/tree"
)

// Item is an agenda item: a parse tree for span (start, start+length) and its scores.
// Scores are log-probabilities or similar, higher is better. outside is an upper
// bound for the score of the rest of the sentence.
//
// Items are immutable and created by models only.
type Item struct {
	node       tree.Node
	inside     float64
	outside    float64
	start      int
	length     int
	tracksDeps bool
	key        Key
}

// Key is the equivalence class of an item.
type Key struct {
	Category   category.ID
	Class      combinator.RuleClass
	Deps       string
	Unlabelled uint64
}

// NewItem creates an agenda item.
func NewItem(node tree.Node, inside, outside float64, start, length int, tracksDeps bool) *Item {
	it := &Item{
		node:       node,
		inside:     inside,
		outside:    outside,
		start:      start,
		length:     length,
		tracksDeps: tracksDeps,
	}
	it.key.Category = node.Category().ID()
	if tracksDeps {
		it.key.Class = node.RuleClass()
		it.key.Unlabelled = node.UnlabelledHash()
		if s := node.Dependencies(); s != nil {
			it.key.Deps = s.Key()
		}
	}
	return it
}

// Node returns the parse tree of an item.
func (it *Item) Node() tree.Node { return it.node }

// Category returns the category of the root of an item's parse tree.
func (it *Item) Category() *category.Category { return it.node.Category() }

// Inside is the score of the parse tree.
func (it *Item) Inside() float64 { return it.inside }

// Outside is the upper bound for the score of the words outside an item's span.
func (it *Item) Outside() float64 { return it.outside }

// Cost is inside plus outside score. The agenda pops items of highest cost first.
func (it *Item) Cost() float64 { return it.inside + it.outside }

// Start is the position of the first word covered.
func (it *Item) Start() int { return it.start }

// Length is the number of words covered.
func (it *Item) Length() int { return it.length }

// Span returns the span of words covered.
func (it *Item) Span() ccg.Span { return ccg.SpanOf(it.start, it.length) }

// TracksDependencies is true if the key of an item includes dependencies.
func (it *Item) TracksDependencies() bool { return it.tracksDeps }

// Key returns the equivalence class of an item.
func (it *Item) Key() Key { return it.key }

func (it *Item) String() string {
	return fmt.Sprintf("%s%s[%.4f+%.4f]", it.node.Category(), it.Span(), it.inside, it.outside)
}
