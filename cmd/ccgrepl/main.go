package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/model"
	"github.com/npillmayer/ccg/parser"
	"github.com/npillmayer/ccg/tree"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI, where users may enter sentences. Every sentence
// is parsed and the best parses are printed as trees.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gdir := flag.String("grammar", ".", "Directory of grammar files")
	ldir := flag.String("lexicon", "", "Directory of lexicon file (default: grammar directory)")
	nbest := flag.Int("nbest", 1, "Number of parses to print")
	useCKY := flag.Bool("cky", false, "Use CKY parser instead of A*")
	trackDeps := flag.Bool("deps", false, "Track dependencies")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo)
	pterm.Info.Println("Welcome to CCG REPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and parser
	reg := category.NewRegistry()
	g, err := grammar.Load(*gdir, reg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if *ldir == "" {
		*ldir = *gdir
	}
	lex, err := grammar.LoadLexicon(*ldir, reg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	factory := &model.Factory{Tagger: model.FromLexicon(lex), TrackDependencies: *trackDeps}
	opts := []parser.Option{parser.NBest(*nbest, 1.0), parser.TrackDependencies(*trackDeps)}
	var p parser.Parser
	if *useCKY {
		p = parser.NewCKY(g, factory, opts...)
	} else {
		p = parser.NewAStar(g, factory, opts...)
	}
	//
	// set up REPL
	repl, err := readline.New("ccg> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{parser: p, repl: repl}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.Eval(input)
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	parser parser.Parser
	repl   *readline.Instance
	last   []parser.Result
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		intp.Eval(line)
	}
	println("Good bye!")
}

// Eval parses a sentence, given on a line by itself, and prints the results.
func (intp *Intp) Eval(line string) {
	words := splitWords(line)
	intp.last = intp.parser.Parse(words)
	if len(intp.last) == 0 {
		pterm.Error.Println("no parse")
		return
	}
	for i, r := range intp.last {
		pterm.Info.Println(fmt.Sprintf("#%d  score %.4f", i+1, r.Score))
		root := pterm.NewTreeFromLeveledList(leveledList(r.Node))
		pterm.DefaultTree.WithRoot(root).Render()
		for _, d := range tree.Dependencies(r.Node) {
			pterm.Println("    " + d.String())
		}
	}
}

// splitWords splits a line at whitespace. A word may carry a POS tag, as in 'cake|NN'.
func splitWords(line string) []ccg.InputWord {
	fields := strings.Fields(line)
	words := make([]ccg.InputWord, len(fields))
	for i, f := range fields {
		if at := strings.LastIndexByte(f, '|'); at > 0 && at < len(f)-1 {
			words[i] = ccg.InputWord{Word: f[:at], POS: f[at+1:]}
		} else {
			words[i] = ccg.InputWord{Word: f}
		}
	}
	return words
}

// --- Tree display ----------------------------------------------------------

// leveledList flattens a parse tree for pterm's tree renderer.
func leveledList(root tree.Node) pterm.LeveledList {
	lister := &treeLister{}
	tree.Walk(root, 0, lister)
	tracer().Debugf("|ll| = %d", len(lister.ll))
	return lister.ll
}

type treeLister struct {
	ll pterm.LeveledList
}

func (l *treeLister) EnterNode(n tree.Node, ctxt tree.NodeCtxt) bool {
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  fmt.Sprintf("%s  [%s] %s", n.Category(), n.RuleType(), ctxt.Span),
	})
	return true
}

func (l *treeLister) ExitNode(tree.Node, []interface{}, tree.NodeCtxt) interface{} {
	return nil
}

func (l *treeLister) Leaf(leaf *tree.Leaf, ctxt tree.NodeCtxt) interface{} {
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  fmt.Sprintf("%s  %s", leaf.Category(), leaf.Word()),
	})
	return nil
}
