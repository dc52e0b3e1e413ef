package category

import (
	"fmt"
	"unicode"
)

type kind uint8

const (
	atomic kind = iota
	functor
)

// Category is a CCG category, either atomic or a functor. Categories are immutable
// and are created exclusively by a Registry.
type Category struct {
	id      ID
	reg     *Registry
	str     string
	kind    kind
	base    string    // atomic only
	feature string    // atomic only
	left    *Category // functor only: result
	right   *Category // functor only: argument
	slash   Slash     // functor only
	nargs   int
}

// Wildcard feature, unifying with every other feature.
const Wildcard = "X"

// NonBare is CCGbank's feature for non-bare noun phrases.
const NonBare = "nb"

// ID returns the registry-wide identifier of a category.
func (c *Category) ID() ID {
	return c.id
}

// String returns the canonical string of a category. Operands of functors are enclosed
// in brackets if they are functors themselves.
func (c *Category) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.str
}

// Registry returns the registry c has been interned in.
func (c *Category) Registry() *Registry {
	return c.reg
}

func (c *Category) bracketed() string {
	if c.kind == functor {
		return "(" + c.str + ")"
	}
	return c.str
}

// IsFunctor is true for functor categories.
func (c *Category) IsFunctor() bool {
	return c.kind == functor
}

// IsAtomic is true for atomic categories.
func (c *Category) IsAtomic() bool {
	return c.kind == atomic
}

// Base is the base symbol of an atomic category, "" for functors.
func (c *Category) Base() string {
	return c.base
}

// Feature is the feature of an atomic category, "" if there is none.
func (c *Category) Feature() string {
	return c.feature
}

// Left is the result part of a functor, nil for atomic categories.
func (c *Category) Left() *Category {
	return c.left
}

// Right is the argument part of a functor, nil for atomic categories.
func (c *Category) Right() *Category {
	return c.right
}

// Slash is the direction of a functor. Do not call it for atomic categories.
func (c *Category) Slash() Slash {
	if c.kind != functor {
		panic(fmt.Sprintf("atomic category %s has no slash", c))
	}
	return c.slash
}

// NumberOfArguments counts the arguments along the result spine of a category.
// Atomic categories have zero arguments.
func (c *Category) NumberOfArguments() int {
	return c.nargs
}

// --- Arguments -------------------------------------------------------------

// Argument returns argument n, 1-indexed. Argument 1 is the innermost one, i.e. the
// one consumed last. For (S\NP)/NP, argument 1 is the subject, argument 2 the object.
// Returns nil if n is out of range.
func (c *Category) Argument(n int) *Category {
	if c.kind != functor || n < 1 || n > c.nargs {
		return nil
	}
	if n == c.nargs {
		return c.right
	}
	return c.left.Argument(n)
}

// ReplaceArgument returns a category where argument n is replaced by arg.
// It panics if n is out of range.
func (c *Category) ReplaceArgument(n int, arg *Category) *Category {
	if c.kind != functor || n < 1 || n > c.nargs {
		panic(fmt.Sprintf("category %s has no argument %d", c, n))
	}
	if n == c.nargs {
		return c.reg.Functor(c.left, c.slash, arg)
	}
	return c.reg.Functor(c.left.ReplaceArgument(n, arg), c.slash, c.right)
}

// AddArgument returns a category with a new argument arg inserted after argument n,
// so that it will become argument n+1. n = 0 adds a new innermost argument,
// n = NumberOfArguments() adds an outermost one.
func (c *Category) AddArgument(n int, slash Slash, arg *Category) *Category {
	if n < 0 || n > c.nargs {
		panic(fmt.Sprintf("cannot add argument at %d to category %s", n, c))
	}
	if n == c.nargs {
		return c.reg.Functor(c, slash, arg)
	}
	return c.reg.Functor(c.left.AddArgument(n, slash, arg), c.slash, c.right)
}

// HeadCategory is the innermost result of a category, which is always atomic.
func (c *Category) HeadCategory() *Category {
	if c.kind == functor {
		return c.left.HeadCategory()
	}
	return c
}

// --- Predicates ------------------------------------------------------------

// IsModifier is true for categories X|X.
func (c *Category) IsModifier() bool {
	return c.kind == functor && c.left == c.right
}

// IsTypeRaised is true for categories X|(X|Y).
func (c *Category) IsTypeRaised() bool {
	return c.kind == functor && c.right.kind == functor && c.right.left == c.left
}

// IsForwardTypeRaised is true for categories X/(X\Y).
func (c *Category) IsForwardTypeRaised() bool {
	return c.IsTypeRaised() && c.slash == Fwd
}

// IsBackwardTypeRaised is true for categories X\(X/Y).
func (c *Category) IsBackwardTypeRaised() bool {
	return c.IsTypeRaised() && c.slash == Bwd
}

// IsFunctionInto is true if c, or one of the results along its spine, is matched by
// target.
func (c *Category) IsFunctionInto(target *Category) bool {
	if target.Matches(c) {
		return true
	}
	return c.kind == functor && c.left.IsFunctionInto(target)
}

// IsFunctionIntoModifier is true if c, or one of the results along its spine, is a
// modifier.
func (c *Category) IsFunctionIntoModifier() bool {
	if c.kind != functor {
		return false
	}
	return c.IsModifier() || c.left.IsFunctionIntoModifier()
}

var bracketPunct = map[string]bool{"LRB": true, "RRB": true, "LQU": true, "RQU": true}

// IsPunctuation is true for atomic categories standing for punctuation marks, like
// ',' or '.', and for brackets and quotes (LRB, RRB, LQU, RQU).
func (c *Category) IsPunctuation() bool {
	if c.kind != atomic {
		return false
	}
	if bracketPunct[c.base] {
		return true
	}
	for _, r := range c.base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsConjunction is true for categories which may coordinate: conj, ',' and ';'.
func (c *Category) IsConjunction() bool {
	return c.kind == atomic && (c.base == "conj" || c.base == "," || c.base == ";")
}

// IsNounOrNP is true for atomic N and NP, regardless of features.
func (c *Category) IsNounOrNP() bool {
	return c.kind == atomic && (c.base == "N" || c.base == "NP")
}

// --- Feature unification ---------------------------------------------------

// Matches checks if c unifies with other. Matching is asymmetric: c is usually the
// argument slot of a functor, other the category offered to it. An atomic c without
// a feature, with the wildcard feature X or with feature nb matches other with any
// feature. A wildcard feature of other matches any feature of c.
func (c *Category) Matches(other *Category) bool {
	if c == other {
		return true
	}
	if c.kind != other.kind {
		return false
	}
	if c.kind == functor {
		return c.slash.Matches(other.slash) && c.left.Matches(other.left) &&
			c.right.Matches(other.right)
	}
	if c.base != other.base {
		return false
	}
	return c.feature == "" || c.feature == Wildcard || c.feature == NonBare ||
		other.feature == Wildcard || c.feature == other.feature
}

// Substitution returns the concrete feature other carries at a position where c has
// the wildcard feature X. Returns "" if there is no such position.
func (c *Category) Substitution(other *Category) string {
	if other == nil || c.kind != other.kind {
		return ""
	}
	if c.kind == atomic {
		if c.feature == Wildcard && other.feature != Wildcard {
			return other.feature
		}
		return ""
	}
	if f := c.right.Substitution(other.right); f != "" {
		return f
	}
	return c.left.Substitution(other.left)
}

// DoSubstitution replaces every wildcard feature X in c by feature.
func (c *Category) DoSubstitution(feature string) *Category {
	if feature == "" || feature == Wildcard {
		return c
	}
	return c.transform(func(a *Category) *Category {
		if a.feature == Wildcard {
			return c.reg.Atomic(a.base, feature)
		}
		return a
	})
}

// DropFeature removes every occurrence of feature from c.
func (c *Category) DropFeature(feature string) *Category {
	return c.transform(func(a *Category) *Category {
		if a.feature == feature {
			return c.reg.Atomic(a.base, "")
		}
		return a
	})
}

// DropPPAndPRFeatures removes features from atomic categories PP and PR.
func (c *Category) DropPPAndPRFeatures() *Category {
	return c.transform(func(a *Category) *Category {
		if a.feature != "" && (a.base == "PP" || a.base == "PR") {
			return c.reg.Atomic(a.base, "")
		}
		return a
	})
}

// transform rebuilds c bottom-up with every atomic sub-category replaced by
// atom(sub-category). Unchanged sub-trees are shared.
func (c *Category) transform(atom func(*Category) *Category) *Category {
	if c.kind == atomic {
		return atom(c)
	}
	l, r := c.left.transform(atom), c.right.transform(atom)
	if l == c.left && r == c.right {
		return c
	}
	return c.reg.Functor(l, c.slash, r)
}
