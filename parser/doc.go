/*
Package parser implements chart parsers for Combinatory Categorial Grammar.

Two drivers are provided. AStar pops items from an agenda in order of their scores
plus an upper bound of the score of the rest of the sentence; the first complete parse
found is the best one. CKY fills the chart bottom-up, span by span.

Both drivers share the same steps:

    1. the model seeds lexical items for every word
    2. items of adjacent spans are combined by the grammar's combinators,
       filtered by seen rules and normal-form constraints
    3. unary rules are applied to new items (never to unary nodes)
    4. complete parses with a root category are collected as results

Scoring is delegated to a Model, created per sentence by a ModelFactory. Parsers are
read-only after construction and may be used from multiple goroutines.

    g, _ := grammar.Load(dir, reg)
    p := parser.NewAStar(g, factory, parser.NBest(5, 1.0))
    results := p.Parse(ccg.Words("I", "like", "cake"))

Configuration

Defaults for the maximum sentence length, the maximum chart size and the number of
parses are read from gconf keys 'ccg.max-sentence-length', 'ccg.max-chart-size' and
'ccg.nbest'. Options passed to NewAStar and NewCKY take precedence.

If flag 'panic-on-parse-failure' is set, a parser panics instead of returning no
result. This is meant for debugging only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.parser'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.parser")
}
