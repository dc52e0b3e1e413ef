/*
Package grammar bundles the configuration inputs of a CCG parser: the combinators,
unary rules, seen rules, special combinators and root categories. It also reads
a simple lexicon for the reference model.

Grammar files live in a single directory:

    unaryRules       FROM TO ["logic"]
    seenRules        LEFT RIGHT
    specialRules     LEFT RIGHT RESULT left|right
    rootCategories   CATEGORY
    lexicon          WORD CATEGORY LOGPROB

Files are line oriented with whitespace separated fields. '#' starts a comment.
Missing files are treated as empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.grammar")
}
