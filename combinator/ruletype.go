package combinator

import (
	"fmt"

	"github.com/npillmayer/ccg/category"
)

// RuleType identifies the rule which created a node of a parse tree.
type RuleType uint8

// Rule types for binary rules, unary rules and lexical categories.
const (
	FA RuleType = iota
	BA
	FC
	BX
	GFC
	GBX
	Conj
	RP
	LP
	Special
	TypeChange
	ForwardTypeRaise
	BackwardTypeRaise
	Lexicon
)

var ruleTypeNames = [...]string{
	"FA", "BA", "FC", "BX", "GFC", "GBX", "CONJ", "RP", "LP", "SPECIAL",
	"UNARY", "FTR", "BTR", "LEX",
}

func (t RuleType) String() string {
	if int(t) >= len(ruleTypeNames) {
		panic(fmt.Sprintf("unknown rule type %d", t))
	}
	return ruleTypeNames[t]
}

// IsUnary is true for type-changing and type-raising rules.
func (t RuleType) IsUnary() bool {
	return t == TypeChange || t == ForwardTypeRaise || t == BackwardTypeRaise
}

// RuleClass is a refinement of RuleType, used by normal form constraints. It differs
// from RuleType in separating the application of modifiers from other applications.
type RuleClass uint8

// Rule classes. Their values are unrelated to the values of RuleType.
const (
	ClassLexicon RuleClass = iota
	ClassFA
	ClassFAMod // X/X  X → X
	ClassBA
	ClassBAMod // X  X\X → X
	ClassFC
	ClassBX
	ClassGFC
	ClassGBX
	ClassConj
	ClassRP
	ClassLP
	ClassSpecial
	ClassTypeChange
	ClassForwardRaise
	ClassBackwardRaise
)

var ruleClassNames = [...]string{
	"LEX", "FA", "FA-MOD", "BA", "BA-MOD", "FC", "BX", "GFC", "GBX", "CONJ", "RP", "LP",
	"SPECIAL", "UNARY", "FTR", "BTR",
}

func (c RuleClass) String() string {
	if int(c) >= len(ruleClassNames) {
		return fmt.Sprintf("RuleClass(%d)", c)
	}
	return ruleClassNames[c]
}

// ClassOf returns the rule class for a node created by rule type t from left and right.
// For unary rules and lexical entries, right is nil.
func ClassOf(t RuleType, left, right *category.Category) RuleClass {
	switch t {
	case FA:
		if left.IsModifier() {
			return ClassFAMod
		}
		return ClassFA
	case BA:
		if right.IsModifier() {
			return ClassBAMod
		}
		return ClassBA
	case FC:
		return ClassFC
	case BX:
		return ClassBX
	case GFC:
		return ClassGFC
	case GBX:
		return ClassGBX
	case Conj:
		return ClassConj
	case RP:
		return ClassRP
	case LP:
		return ClassLP
	case Special:
		return ClassSpecial
	case TypeChange:
		return ClassTypeChange
	case ForwardTypeRaise:
		return ClassForwardRaise
	case BackwardTypeRaise:
		return ClassBackwardRaise
	case Lexicon:
		return ClassLexicon
	}
	panic(fmt.Sprintf("unknown rule type %d", t))
}
