/*
Package category implements the categories of Combinatory Categorial Grammar.

A category is either atomic, like NP or S[dcl], or a functor, like (S[dcl]\NP)/NP.
Atomic categories consist of a base symbol and at most one feature. Functor categories
are built from a result category, a slash and an argument category:

    (S[dcl]\NP)/NP    looks for an NP to the right, resulting in S[dcl]\NP
    S[dcl]\NP         looks for an NP to the left, resulting in S[dcl]

Categories are interned in a Registry. Structurally identical categories are always the
same object, i.e. equality is identity (or equality of IDs).

    reg := category.NewRegistry()
    tv, err := reg.Intern(`(S[dcl]\NP)/NP`)
    np := reg.MustIntern("NP")
    tv.Argument(2) == np     // true

Interning is thread-safe. Lookups of already interned categories do not lock.

Features

Feature X is a wildcard and unifies with any feature. Feature nb (CCGbank's marker for
non-bare noun phrases) carries no meaning for parsing and is treated as a wildcard as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package category

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.category'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.category")
}
