package parser

import (
	"github.com/npillmayer/schuko/gconf"
)

// Built-in defaults, used if no configuration value is set.
const (
	DefaultMaxSentenceLength = 250
	DefaultMaxChartSize      = 300000
	DefaultNBest             = 1
)

type config struct {
	maxLength int
	maxChart  int
	nbest     int
	beam      float64 // keep searching for results better than beam·best
	trackDeps bool
	dedup     bool // n-best cells dedup by dependency hash
	beamSize  int  // CKY without dynamic programming if > 0
}

func defaults() config {
	c := config{
		maxLength: DefaultMaxSentenceLength,
		maxChart:  DefaultMaxChartSize,
		nbest:     DefaultNBest,
		beam:      1.0,
	}
	if n := gconf.GetInt("ccg.max-sentence-length"); n > 0 {
		c.maxLength = n
	}
	if n := gconf.GetInt("ccg.max-chart-size"); n > 0 {
		c.maxChart = n
	}
	if n := gconf.GetInt("ccg.nbest"); n > 0 {
		c.nbest = n
	}
	return c
}

// Option configures a parser.
type Option func(c *config)

// MaxSentenceLength sets the length of the longest sentence a parser will try.
// Longer sentences are not parsed at all.
func MaxSentenceLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// MaxChartSize limits the number of items in a chart. Parsing is given up if
// the limit is exceeded.
func MaxChartSize(n int) Option {
	return func(c *config) {
		c.maxChart = n
	}
}

// NBest sets the number of parses to return. After n parses have been found, an A*
// parser continues as long as items on the agenda score better than beam times
// the score of the best parse.
func NBest(n int, beam float64) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.nbest = n
		c.beam = beam
	}
}

// TrackDependencies sets or clears option TrackDependencies. Items with different
// dependency structures will be kept apart in the chart.
func TrackDependencies(b bool) Option {
	return func(c *config) {
		c.trackDeps = b
	}
}

// DeduplicateByDependencies sets or clears option DeduplicateByDependencies.
// For n-best parsing, parses resolving the same dependencies are counted once.
// Implies TrackDependencies.
func DeduplicateByDependencies(b bool) Option {
	return func(c *config) {
		c.dedup = b
		if b {
			c.trackDeps = true
		}
	}
}

// BeamSize switches a CKY parser to beam search: every cell keeps the n best items,
// without dynamic programming. Has no effect on A* parsers.
func BeamSize(n int) Option {
	return func(c *config) {
		c.beamSize = n
	}
}
