package combinator

import (
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/deps"
)

// Combinator is a binary rule of CCG.
type Combinator interface {
	RuleType() RuleType
	CanApply(left, right *category.Category) bool
	Apply(left, right *category.Category) *category.Category // call only if CanApply
	HeadIsLeft(left, right *category.Category) bool
	// ApplyDependencies returns the dependency structure of the result. It returns nil
	// if dependencies are not tracked, i.e. if left or right is nil.
	ApplyDependencies(left, right deps.Structure, resolved *[]deps.Dependency) deps.Structure
	ApplyLogic(left, right Logic) Logic
}

// RuleProduction is the result of applying a combinator to a pair of categories.
type RuleProduction struct {
	Type       RuleType
	Result     *category.Category
	HeadIsLeft bool
	Combinator Combinator
}

// Standard rules of CCG.
var (
	ForwardApplication             Combinator = fwdApp{rule{FA}}
	BackwardApplication            Combinator = bwdApp{rule{BA}}
	ForwardComposition             Combinator = fwdComp{rule{FC}}
	BackwardCrossedComposition     Combinator = bwdXComp{rule{BX}}
	GeneralizedForwardComposition  Combinator = genFwdComp{rule{GFC}}
	GeneralizedBackwardComposition Combinator = genBwdXComp{rule{GBX}}
	Conjunction                    Combinator = conjunction{rule{Conj}}
	RemovePunctuationRight         Combinator = removePunct{rule{RP}}
	RemovePunctuationLeft          Combinator = removePunct{rule{LP}}
)

// Standard returns the standard rules in a fixed order.
func Standard() []Combinator {
	return []Combinator{
		ForwardApplication,
		BackwardApplication,
		ForwardComposition,
		BackwardCrossedComposition,
		GeneralizedForwardComposition,
		GeneralizedBackwardComposition,
		Conjunction,
		RemovePunctuationRight,
		RemovePunctuationLeft,
	}
}

// GetRules returns a production for every rule in rules which is applicable to
// left and right. Feature [nb] is erased from both categories first.
// Productions are in the order of rules.
func GetRules(left, right *category.Category, rules []Combinator) []RuleProduction {
	left = left.DropFeature(category.NonBare)
	right = right.DropFeature(category.NonBare)
	var prods []RuleProduction
	for _, c := range rules {
		if c.CanApply(left, right) {
			prods = append(prods, RuleProduction{
				Type:       c.RuleType(),
				Result:     c.Apply(left, right),
				HeadIsLeft: c.HeadIsLeft(left, right),
				Combinator: c,
			})
		}
	}
	return prods
}

// --- Standard rules --------------------------------------------------------

type rule struct {
	typ RuleType
}

func (r rule) RuleType() RuleType {
	return r.typ
}

func (r rule) ApplyLogic(left, right Logic) Logic {
	if left == nil && right == nil {
		return nil
	}
	return Term{Rule: r.typ, Args: []Logic{left, right}}
}

func (r rule) String() string {
	return r.typ.String()
}

func isFwd(c *category.Category) bool {
	return c.IsFunctor() && c.Slash().Matches(category.Fwd)
}

func isBwd(c *category.Category) bool {
	return c.IsFunctor() && c.Slash().Matches(category.Bwd)
}

// X/Y  Y → X
type fwdApp struct{ rule }

func (fwdApp) CanApply(l, r *category.Category) bool {
	return isFwd(l) && l.Right().Matches(r)
}

func (fwdApp) Apply(l, r *category.Category) *category.Category {
	if l.IsModifier() {
		return r
	}
	return l.Left().DoSubstitution(l.Right().Substitution(r))
}

func (fwdApp) HeadIsLeft(l, r *category.Category) bool {
	return !l.IsTypeRaised()
}

func (fwdApp) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	return l.Apply(r, resolved)
}

// Y  X\Y → X
type bwdApp struct{ rule }

func (bwdApp) CanApply(l, r *category.Category) bool {
	return isBwd(r) && r.Right().Matches(l)
}

func (bwdApp) Apply(l, r *category.Category) *category.Category {
	if r.IsModifier() {
		return l
	}
	return r.Left().DoSubstitution(r.Right().Substitution(l))
}

func (bwdApp) HeadIsLeft(l, r *category.Category) bool {
	return r.IsTypeRaised()
}

func (bwdApp) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	return r.Apply(l, resolved)
}

// X/Y  Y/Z → X/Z
type fwdComp struct{ rule }

func (fwdComp) CanApply(l, r *category.Category) bool {
	return isFwd(l) && isFwd(r) && l.Right().Matches(r.Left())
}

func (fwdComp) Apply(l, r *category.Category) *category.Category {
	if l.IsModifier() {
		return r
	}
	res := l.Registry().Functor(l.Left(), r.Slash(), r.Right())
	return res.DoSubstitution(l.Right().Substitution(r.Left()))
}

func (fwdComp) HeadIsLeft(l, r *category.Category) bool {
	return !l.IsTypeRaised()
}

func (fwdComp) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	return l.Compose(r, resolved)
}

// Y/Z  X\Y → X/Z
type bwdXComp struct{ rule }

func (bwdXComp) CanApply(l, r *category.Category) bool {
	return isFwd(l) && isBwd(r) && r.Right().Matches(l.Left()) && !l.Left().IsNounOrNP()
}

func (bwdXComp) Apply(l, r *category.Category) *category.Category {
	if r.IsModifier() {
		return l
	}
	res := l.Registry().Functor(r.Left(), l.Slash(), l.Right())
	return res.DoSubstitution(r.Right().Substitution(l.Left()))
}

func (bwdXComp) HeadIsLeft(l, r *category.Category) bool {
	return r.IsTypeRaised()
}

func (bwdXComp) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	return r.Compose(l, resolved)
}

// X/Y  (Y/Z)|W → (X/Z)|W
type genFwdComp struct{ rule }

func (genFwdComp) CanApply(l, r *category.Category) bool {
	return isFwd(l) && r.IsFunctor() && isFwd(r.Left()) && l.Right().Matches(r.Left().Left())
}

func (genFwdComp) Apply(l, r *category.Category) *category.Category {
	if l.IsModifier() {
		return r
	}
	reg := l.Registry()
	inner := reg.Functor(l.Left(), r.Left().Slash(), r.Left().Right())
	res := reg.Functor(inner, r.Slash(), r.Right())
	return res.DoSubstitution(l.Right().Substitution(r.Left().Left()))
}

func (genFwdComp) HeadIsLeft(l, r *category.Category) bool {
	return !l.IsTypeRaised()
}

func (genFwdComp) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	return l.Compose2(r, resolved)
}

// (Y/Z)/W  X\Y → (X/Z)/W
type genBwdXComp struct{ rule }

func (genBwdXComp) CanApply(l, r *category.Category) bool {
	return isFwd(l) && isFwd(l.Left()) && isBwd(r) && r.Right().Matches(l.Left().Left()) &&
		!l.Left().Left().IsNounOrNP()
}

func (genBwdXComp) Apply(l, r *category.Category) *category.Category {
	if r.IsModifier() {
		return l
	}
	reg := l.Registry()
	inner := reg.Functor(r.Left(), l.Left().Slash(), l.Left().Right())
	res := reg.Functor(inner, l.Slash(), l.Right())
	return res.DoSubstitution(r.Right().Substitution(l.Left().Left()))
}

func (genBwdXComp) HeadIsLeft(l, r *category.Category) bool {
	return r.IsTypeRaised()
}

func (genBwdXComp) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	return r.Compose2(l, resolved)
}

// conj  X → X\X
type conjunction struct{ rule }

func (conjunction) CanApply(l, r *category.Category) bool {
	return l.IsConjunction() && !r.IsPunctuation() && !r.IsTypeRaised()
}

func (conjunction) Apply(l, r *category.Category) *category.Category {
	return r.Registry().Functor(r, category.Bwd, r)
}

func (conjunction) HeadIsLeft(l, r *category.Category) bool {
	return false
}

func (conjunction) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if r == nil {
		return nil
	}
	return r.Conjunction()
}

// X  . → X   (RP)
// ,  X → X   (LP)
type removePunct struct{ rule }

func (p removePunct) CanApply(l, r *category.Category) bool {
	if p.typ == RP {
		return r.IsPunctuation()
	}
	return l.IsPunctuation() && !r.IsPunctuation()
}

func (p removePunct) Apply(l, r *category.Category) *category.Category {
	if p.typ == RP {
		return l
	}
	return r
}

func (p removePunct) HeadIsLeft(l, r *category.Category) bool {
	return p.typ == RP
}

func (p removePunct) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if p.typ == RP {
		return l
	}
	return r
}

func (p removePunct) ApplyLogic(l, r Logic) Logic {
	if p.typ == RP {
		return l
	}
	return r
}
