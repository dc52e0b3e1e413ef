/*
Package model implements a supertag-factored parsing model.

The score of a parse is the sum of the log-probabilities of its lexical categories.
Combinators and unary rules do not change scores. The outside estimate of a span is the
sum of the best lexical scores of all words outside of it, which never underestimates
the score of a complete parse. This makes the model suitable for A* parsing.

Lexical categories are provided by a Tagger. FromLexicon creates a tagger from a
grammar.Lexicon:

    lex, _ := grammar.LoadLexicon(dir, reg)
    factory := &model.Factory{Tagger: model.FromLexicon(lex)}
    p := parser.NewAStar(g, factory)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package model

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.model'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.model")
}
