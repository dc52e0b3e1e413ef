/*
Package ccgrepl/main provides an interactive command line tool for parsing
sentences with a CCG grammar. Sentences are entered as whitespace separated words,
optionally tagged as word|POS. The best parses are printed as trees.

    ccgrepl -grammar ./model -nbest 3

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.repl'
func tracer() tracing.Trace {
	return tracing.Select("ccg.repl")
}
