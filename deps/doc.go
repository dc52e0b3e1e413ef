/*
Package deps connects CCG derivations to predicate-argument dependencies.

The parser does not interpret dependency structures. Combinators hand the structures
of both constituents to a Structure implementation, which returns the structure of the
combined constituent and reports the dependencies resolved by this combination step.
The parser itself only asks for the head word of a structure, and uses Key and Hasher
to decide which derivations are equivalent.

HeadStructure is a small implementation which fills argument slots of lexical categories
with head words. It is sufficient for dependency-based equivalence classing and for
tests; clients with a markup grammar will bring their own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deps

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.deps'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.deps")
}
