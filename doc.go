/*
Package ccg is a chart parser for Combinatory Categorial Grammar.

Given a sentence of (optionally pre-tagged) words, the parser searches the space of
CCG derivations and returns the best, or the n best, parses. Scoring is not part of
this module: clients plug in a model, which assigns scores to lexical categories and
to every combination step. Package structure is as follows:

■ category: CCG categories, interned in a registry.

■ combinator: the binary rules of CCG (application, composition, coordination,
punctuation absorption) plus unary type-changing and type-raising rules.

■ normalform: constraints which remove spurious derivational ambiguity.

■ seen: a filter for category pairs which have been observed in a corpus.

■ tree, chart: parse trees, agenda items and chart cells.

■ parser: an A* parser and a CKY parser.

■ model, grammar: a reference supertag-factored model and loaders for grammar files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ccg
