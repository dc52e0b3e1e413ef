/*
Package combinator implements the rules of Combinatory Categorial Grammar.

Binary rules are values implementing interface Combinator. The standard set consists
of forward and backward application (FA, BA), forward composition (FC), backward crossed
composition (BX), generalized (degree 2) variants of both compositions (GFC, GBX),
coordination, and removal of punctuation to the left (LP) or to the right (RP) of a
constituent:

    FA     X/Y  Y      → X
    BA     Y    X\Y    → X
    FC     X/Y  Y/Z    → X/Z
    BX     Y/Z  X\Y    → X/Z        Y must not be N or NP
    GFC    X/Y  (Y/Z)|W → (X/Z)|W
    GBX    (Y/Z)/W  X\Y → (X/Z)/W   Y must not be N or NP
    CONJ   conj X      → X\X
    RP     X    .      → X
    LP     ,    X      → X

Grammars may add special combinators for fixed triples of categories.
Unary rules (type-raising and type-changing) are handled by UnaryRule.

Combinators do not interpret dependency structures or logical forms. They call into
deps.Structure and hand logical forms through to the result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combinator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.combinator'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.combinator")
}
