/*
Package chart implements agenda items, the agenda and the chart for CCG parsing.

An Item is a partial parse, i.e. a parse tree covering a span of the input, together
with its scores. The chart holds one cell per span. Cells collapse items into equivalence
classes: within a class, only the best (or the n best) items survive. If dependencies
are not tracked, items of the same category are equivalent. Otherwise items must also
agree in rule class, dependency structure and dependencies resolved.

Cell variants:

    Cell1Best               first item per class wins (A*)
    Cell1BestCKY            best item per class wins
    CellNBest               n best items per class
    CellNBestHashed         like CellNBest, items with equal dependencies count as one
    CellNoDynamicProgram    n best items of the cell, no equivalence classes

The Agenda is a priority queue used by the A* parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.chart'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.chart")
}
