package grammar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/combinator"
	"github.com/npillmayer/ccg/seen"
)

// Names of the files in a grammar directory.
const (
	UnaryRulesFile     = "unaryRules"
	SeenRulesFile      = "seenRules"
	SpecialRulesFile   = "specialRules"
	RootCategoriesFile = "rootCategories"
	LexiconFile        = "lexicon"
)

// Grammar is the read-only configuration of a parser. It may be shared between
// parsers.
type Grammar struct {
	Registry    *category.Registry
	Combinators []combinator.Combinator
	Unary       *combinator.UnaryRules
	Seen        *seen.Rules          // nil allows every pair
	Roots       []*category.Category // empty accepts every category
}

// New creates a grammar with the standard combinators, no unary rules, no seen rules
// and no restriction on root categories.
func New(reg *category.Registry) *Grammar {
	return &Grammar{
		Registry:    reg,
		Combinators: combinator.Standard(),
		Unary:       combinator.NewUnaryRules(),
	}
}

// IsRoot is true if c is an acceptable category for a complete parse.
func (g *Grammar) IsRoot(c *category.Category) bool {
	if len(g.Roots) == 0 {
		return true
	}
	for _, r := range g.Roots {
		if r == c {
			return true
		}
	}
	return false
}

// Load reads a grammar from directory dir. Categories are interned in reg.
func Load(dir string, reg *category.Registry) (*Grammar, error) {
	g := New(reg)
	readers := []struct {
		name string
		read func(string, []byte) error
	}{
		{UnaryRulesFile, g.ReadUnaryRules},
		{SeenRulesFile, g.ReadSeenRules},
		{SpecialRulesFile, g.ReadSpecialRules},
		{RootCategoriesFile, g.ReadRootCategories},
	}
	for _, r := range readers {
		input, err := readFile(dir, r.name)
		if err != nil {
			return nil, err
		}
		if input == nil {
			tracer().Infof("grammar file %s not present", r.name)
			continue
		}
		if err = r.read(r.name, input); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	tracer().Infof("grammar loaded: %d combinators, %d unary rules, %d seen rules, %d roots",
		len(g.Combinators), g.Unary.Len(), g.Seen.Len(), len(g.Roots))
	return g, nil
}

// readFile returns nil content for a missing file.
func readFile(dir, name string) ([]byte, error) {
	input, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return input, err
}

// ReadUnaryRules adds rules of the form 'FROM TO ["logic"]'.
func (g *Grammar) ReadUnaryRules(name string, input []byte) error {
	recs, err := records(name, input)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err = expect(name, rec, 2); err != nil {
			return err
		}
		cats, err := g.intern(name, rec, rec.fields...)
		if err != nil {
			return err
		}
		g.Unary.Add(cats[0], cats[1], rec.quoted)
	}
	return nil
}

// ParseUnaryRule reads a single unary rule, as written by UnaryRule.MarshalText.
func ParseUnaryRule(reg *category.Registry, line string) (*combinator.UnaryRule, error) {
	recs, err := records("rule", []byte(line))
	if err != nil {
		return nil, err
	}
	if len(recs) != 1 {
		return nil, fmt.Errorf("expected a single unary rule, have %d lines", len(recs))
	}
	g := &Grammar{Registry: reg}
	if err = expect("rule", recs[0], 2); err != nil {
		return nil, err
	}
	cats, err := g.intern("rule", recs[0], recs[0].fields...)
	if err != nil {
		return nil, err
	}
	return combinator.NewUnaryRule(cats[0], cats[1], recs[0].quoted), nil
}

// ReadSeenRules sets the seen rules from lines of the form 'LEFT RIGHT'.
func (g *Grammar) ReadSeenRules(name string, input []byte) error {
	recs, err := records(name, input)
	if err != nil {
		return err
	}
	pairs := make([]seen.Pair, 0, len(recs))
	for _, rec := range recs {
		if err = expect(name, rec, 2); err != nil {
			return err
		}
		cats, err := g.intern(name, rec, rec.fields...)
		if err != nil {
			return err
		}
		pairs = append(pairs, seen.Pair{Left: cats[0], Right: cats[1]})
	}
	g.Seen = seen.New(pairs)
	return nil
}

// ReadSpecialRules adds special combinators 'LEFT RIGHT RESULT left|right'.
func (g *Grammar) ReadSpecialRules(name string, input []byte) error {
	recs, err := records(name, input)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err = expect(name, rec, 4); err != nil {
			return err
		}
		cats, err := g.intern(name, rec, rec.fields[:3]...)
		if err != nil {
			return err
		}
		var headIsLeft bool
		switch rec.fields[3] {
		case "left":
			headIsLeft = true
		case "right":
		default:
			return fmt.Errorf("%s:%d: head must be 'left' or 'right', is %q", name, rec.line, rec.fields[3])
		}
		g.Combinators = append(g.Combinators, combinator.NewSpecial(cats[0], cats[1], cats[2], headIsLeft))
	}
	return nil
}

// ReadRootCategories adds root categories, one per line.
func (g *Grammar) ReadRootCategories(name string, input []byte) error {
	recs, err := records(name, input)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err = expect(name, rec, 1); err != nil {
			return err
		}
		cats, err := g.intern(name, rec, rec.fields[0])
		if err != nil {
			return err
		}
		g.Roots = append(g.Roots, cats[0])
	}
	return nil
}

func (g *Grammar) intern(name string, rec record, strs ...string) ([]*category.Category, error) {
	cats := make([]*category.Category, len(strs))
	for i, s := range strs {
		c, err := g.Registry.Intern(s)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, rec.line, err)
		}
		cats[i] = c
	}
	return cats, nil
}

func expect(name string, rec record, n int) error {
	if len(rec.fields) != n {
		return fmt.Errorf("%s:%d: expected %d fields, have %d", name, rec.line, n, len(rec.fields))
	}
	return nil
}

// --- Lexicon ---------------------------------------------------------------

// LexEntry is a lexical category of a word, together with its log-probability.
type LexEntry struct {
	Category *category.Category
	LogProb  float64
}

// Lexicon maps words to their lexical categories.
type Lexicon map[string][]LexEntry

// ReadLexicon reads lines of the form 'WORD CATEGORY LOGPROB'.
func ReadLexicon(reg *category.Registry, name string, input []byte) (Lexicon, error) {
	recs, err := records(name, input)
	if err != nil {
		return nil, err
	}
	g := &Grammar{Registry: reg}
	lex := make(Lexicon)
	for _, rec := range recs {
		if err = expect(name, rec, 3); err != nil {
			return nil, err
		}
		cats, err := g.intern(name, rec, rec.fields[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(rec.fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, rec.line, err)
		}
		word := rec.fields[0]
		lex[word] = append(lex[word], LexEntry{Category: cats[0], LogProb: p})
	}
	tracer().Infof("lexicon %s: %d words", name, len(lex))
	return lex, nil
}

// LoadLexicon reads the lexicon file from directory dir. A missing file results in an
// empty lexicon.
func LoadLexicon(dir string, reg *category.Registry) (Lexicon, error) {
	input, err := readFile(dir, LexiconFile)
	if err != nil {
		return nil, err
	}
	return ReadLexicon(reg, LexiconFile, input)
}
