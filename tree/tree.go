/*
Package tree implements CCG parse trees.

Parse trees are built bottom-up by the parsers, one node per derivation step. Nodes are
immutable. Nodes with identical structure may occur in different chart cells; they are
not shared.

Every node carries the dependency structure of its sub-tree (nil if dependencies are not
tracked) and a hash over all dependencies resolved within its sub-tree. Parsers use the
hash to detect derivations which differ in structure, but not in their dependencies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"strings"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/combinator"
	"github.com/npillmayer/ccg/deps"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.tree'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.tree")
}

// Node is a node of a parse tree.
type Node interface {
	Category() *category.Category
	Head() int   // index of the head word
	Length() int // number of words covered
	RuleType() combinator.RuleType
	RuleClass() combinator.RuleClass
	Children() []Node
	Dependencies() deps.Structure // nil if not tracked
	Resolved() []deps.Dependency  // dependencies resolved at this node
	DepHash() uint64              // hash of dependencies resolved in this sub-tree
	UnlabelledHash() uint64       // same, without labels
	Logic() combinator.Logic
	String() string
}

// --- Leaf ------------------------------------------------------------------

// Leaf is a node for a word and its lexical category.
type Leaf struct {
	word  ccg.InputWord
	index int
	cat   *category.Category
	deps  deps.Structure
}

var _ Node = (*Leaf)(nil)

// NewLeaf creates a leaf for word number index. s may be nil.
func NewLeaf(word ccg.InputWord, index int, cat *category.Category, s deps.Structure) *Leaf {
	return &Leaf{word: word, index: index, cat: cat, deps: s}
}

// Word returns the input word of a leaf.
func (l *Leaf) Word() ccg.InputWord { return l.word }

// Index is the position of the word in the sentence.
func (l *Leaf) Index() int { return l.index }

func (l *Leaf) Category() *category.Category    { return l.cat }
func (l *Leaf) Head() int                       { return l.index }
func (l *Leaf) Length() int                     { return 1 }
func (l *Leaf) RuleType() combinator.RuleType   { return combinator.Lexicon }
func (l *Leaf) RuleClass() combinator.RuleClass { return combinator.ClassLexicon }
func (l *Leaf) Children() []Node                { return nil }
func (l *Leaf) Dependencies() deps.Structure    { return l.deps }
func (l *Leaf) Resolved() []deps.Dependency     { return nil }
func (l *Leaf) DepHash() uint64                 { return 0 }
func (l *Leaf) UnlabelledHash() uint64          { return 0 }
func (l *Leaf) Logic() combinator.Logic         { return l.word.Word }

func (l *Leaf) String() string {
	return "(" + l.cat.String() + " " + l.word.Word + ")"
}

// --- Unary -----------------------------------------------------------------

// Unary is a node created by a unary rule.
type Unary struct {
	child Node
	rule  *combinator.UnaryRule
	deps  deps.Structure
	logic combinator.Logic
}

var _ Node = (*Unary)(nil)

// NewUnary applies rule to child.
func NewUnary(child Node, rule *combinator.UnaryRule) *Unary {
	return &Unary{
		child: child,
		rule:  rule,
		deps:  rule.ApplyDependencies(child.Dependencies()),
		logic: rule.ApplyLogic(child.Logic()),
	}
}

// Rule returns the unary rule of a node.
func (u *Unary) Rule() *combinator.UnaryRule { return u.rule }

// Child returns the single child of a node.
func (u *Unary) Child() Node { return u.child }

func (u *Unary) Category() *category.Category  { return u.rule.To }
func (u *Unary) Head() int                     { return u.child.Head() }
func (u *Unary) Length() int                   { return u.child.Length() }
func (u *Unary) RuleType() combinator.RuleType { return u.rule.RuleType() }
func (u *Unary) Children() []Node              { return []Node{u.child} }
func (u *Unary) Dependencies() deps.Structure  { return u.deps }
func (u *Unary) Resolved() []deps.Dependency   { return nil }
func (u *Unary) DepHash() uint64               { return u.child.DepHash() }
func (u *Unary) UnlabelledHash() uint64        { return u.child.UnlabelledHash() }
func (u *Unary) Logic() combinator.Logic       { return u.logic }

func (u *Unary) RuleClass() combinator.RuleClass {
	return combinator.ClassOf(u.rule.RuleType(), u.child.Category(), nil)
}

func (u *Unary) String() string {
	return "(" + u.rule.To.String() + " " + u.child.String() + ")"
}

// --- Binary ----------------------------------------------------------------

// Binary is a node created by a combinator.
type Binary struct {
	left, right Node
	prod        combinator.RuleProduction
	class       combinator.RuleClass
	head        int
	deps        deps.Structure
	resolved    []deps.Dependency
	hash        uint64
	uhash       uint64
	logic       combinator.Logic
}

var _ Node = (*Binary)(nil)

// NewBinary combines left and right with production prod. If dependencies are tracked,
// the head word is taken from the resulting dependency structure and hasher is used to
// hash the dependencies resolved. hasher may be nil if dependencies are not tracked.
func NewBinary(left, right Node, prod combinator.RuleProduction, hasher *deps.Hasher) *Binary {
	b := &Binary{
		left:  left,
		right: right,
		prod:  prod,
		class: combinator.ClassOf(prod.Type, left.Category(), right.Category()),
		logic: prod.Combinator.ApplyLogic(left.Logic(), right.Logic()),
	}
	b.deps = prod.Combinator.ApplyDependencies(left.Dependencies(), right.Dependencies(), &b.resolved)
	if b.deps != nil {
		b.head = b.deps.ArbitraryHead()
	} else if prod.HeadIsLeft {
		b.head = left.Head()
	} else {
		b.head = right.Head()
	}
	b.hash = left.DepHash() ^ right.DepHash()
	b.uhash = left.UnlabelledHash() ^ right.UnlabelledHash()
	if hasher != nil && len(b.resolved) > 0 {
		b.hash ^= hasher.Hash(b.resolved)
		b.uhash ^= hasher.Unlabelled(b.resolved)
	}
	return b
}

// Left returns the left child.
func (b *Binary) Left() Node { return b.left }

// Right returns the right child.
func (b *Binary) Right() Node { return b.right }

// HeadIsLeft is true if the head word is in the left child.
func (b *Binary) HeadIsLeft() bool {
	if b.deps != nil {
		return b.head == b.left.Head()
	}
	return b.prod.HeadIsLeft
}

// Production returns the rule production which created b.
func (b *Binary) Production() combinator.RuleProduction { return b.prod }

func (b *Binary) Category() *category.Category    { return b.prod.Result }
func (b *Binary) Head() int                       { return b.head }
func (b *Binary) Length() int                     { return b.left.Length() + b.right.Length() }
func (b *Binary) RuleType() combinator.RuleType   { return b.prod.Type }
func (b *Binary) RuleClass() combinator.RuleClass { return b.class }
func (b *Binary) Children() []Node                { return []Node{b.left, b.right} }
func (b *Binary) Dependencies() deps.Structure    { return b.deps }
func (b *Binary) Resolved() []deps.Dependency     { return b.resolved }
func (b *Binary) DepHash() uint64                 { return b.hash }
func (b *Binary) UnlabelledHash() uint64          { return b.uhash }
func (b *Binary) Logic() combinator.Logic         { return b.logic }

func (b *Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.prod.Result.String())
	sb.WriteByte(' ')
	sb.WriteString(b.left.String())
	sb.WriteByte(' ')
	sb.WriteString(b.right.String())
	sb.WriteByte(')')
	return sb.String()
}
