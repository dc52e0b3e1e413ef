/*
Package seen implements a filter for pairs of categories which have been seen
combining in a corpus.

Parsers skip rule lookup and normal form checks for category pairs which never
combined in the training data. This loses a tiny amount of recall but saves a lot of
work. Categories are compared without the wildcard feature X, without [nb] and without
features of PP and PR.

Besides the corpus pairs, two kinds of combinations are always allowed: combinations
with punctuation, and plain application of a functor to its own argument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seen

import (
	"sync"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.seen'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.seen")
}

// Pair is a pair of categories seen combining.
type Pair struct {
	Left, Right *category.Category
}

// Rules is a set of seen category pairs. A nil or empty set allows every pair.
// Rules are read-only after construction and may be shared between parsers.
type Rules struct {
	ids    map[category.ID]int // normalized category → row/column
	lookup sync.Map            // category ID → row/column, or -1
	matrix *BitMatrix
}

// New creates a set of seen rules from pairs.
func New(pairs []Pair) *Rules {
	rules := &Rules{ids: make(map[category.ID]int)}
	for _, p := range pairs {
		rules.id(normalize(p.Left))
		rules.id(normalize(p.Right))
	}
	n := len(rules.ids)
	rules.matrix = NewBitMatrix(n, n)
	for _, p := range pairs {
		rules.matrix.Set(rules.ids[normalize(p.Left).ID()], rules.ids[normalize(p.Right).ID()])
	}
	tracer().Infof("%d seen rules for %d categories", rules.matrix.ValueCount(), n)
	return rules
}

func (rules *Rules) id(c *category.Category) int {
	if id, ok := rules.ids[c.ID()]; ok {
		return id
	}
	id := len(rules.ids)
	rules.ids[c.ID()] = id
	return id
}

// Len counts the distinct pairs.
func (rules *Rules) Len() int {
	if rules == nil || rules.matrix == nil {
		return 0
	}
	return rules.matrix.ValueCount()
}

// IsSeen checks if left and right may combine.
func (rules *Rules) IsSeen(left, right *category.Category) bool {
	if rules.Len() == 0 {
		return true
	}
	if left.IsPunctuation() || right.IsPunctuation() {
		return true
	}
	if left.IsFunctor() && left.Slash() != category.Bwd && left.Right().Matches(right) {
		return true
	}
	if right.IsFunctor() && right.Slash() != category.Fwd && right.Right().Matches(left) {
		return true
	}
	i, j := rules.find(left), rules.find(right)
	if i < 0 || j < 0 {
		return false
	}
	return rules.matrix.Value(i, j)
}

// find returns the row/column of a category, or -1.
func (rules *Rules) find(c *category.Category) int {
	if id, ok := rules.lookup.Load(c.ID()); ok {
		return id.(int)
	}
	id, ok := rules.ids[normalize(c).ID()]
	if !ok {
		id = -1
	}
	rules.lookup.Store(c.ID(), id)
	return id
}

func normalize(c *category.Category) *category.Category {
	return c.DropFeature(category.Wildcard).DropFeature(category.NonBare).DropPPAndPRFeatures()
}
