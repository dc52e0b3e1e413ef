/*
Package normalform restricts CCG derivations to a normal form.

CCG allows many derivations for one reading of a sentence, e.g. by composing instead of
applying, or by type-raising a subject. IsOk rejects a binary combination if an
equivalent combination exists which the parser will find as well. The constraints are
those of Eisner (1996) and Hockenmaier & Bisk (2010), plus constraints on punctuation
and on the attachment order of modifiers:

    E1   no output of FC/GFC as left operand of FA, FC or GFC
    E2   no output of BX/GBX as right operand of BA, BX or GBX
    H1   no forward type-raised left operand of FA
    H2   no backward type-raised right operand of BA
    H3   no forward type-raised left operand of FC if the right operand is output of BX/GBX
    H4   no backward type-raised right operand of BX if the left operand is output of FC/GFC
    H5   no GFC output as right operand of FC, no GBX output as left operand of BX
    H6   coordination output X\X is consumed by BA only
    P1   left punctuation is removed at the start of the sentence only
    P2   right punctuation is removed after everything else
    P3   no left punctuation removal over right punctuation removal
    M1   a pre-modifier X/X does not apply to a constituent which is already
         post-modified, attach the post-modifier last

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package normalform

import (
	"github.com/npillmayer/ccg/category"
	c "github.com/npillmayer/ccg/combinator"
)

// IsOk decides if a binary combination of rule type rule is admissible. leftClass and
// rightClass are the rule classes of the nodes which created left and right.
// isPrefixOfSentence is true if left starts at the first word of the sentence.
//
// IsOk has no side effects.
func IsOk(leftClass, rightClass c.RuleClass, rule c.RuleType,
	left, right, result *category.Category, isPrefixOfSentence bool) bool {
	//
	switch {
	case (leftClass == c.ClassFC || leftClass == c.ClassGFC) && // E1
		(rule == c.FA || rule == c.FC || rule == c.GFC):
		return false
	case (rightClass == c.ClassBX || rightClass == c.ClassGBX) && // E2
		(rule == c.BA || rule == c.BX || rule == c.GBX):
		return false
	case leftClass == c.ClassForwardRaise && rule == c.FA: // H1
		return false
	case rightClass == c.ClassBackwardRaise && rule == c.BA: // H2
		return false
	case leftClass == c.ClassForwardRaise && rule == c.FC && // H3
		(rightClass == c.ClassBX || rightClass == c.ClassGBX):
		return false
	case rightClass == c.ClassBackwardRaise && rule == c.BX && // H4
		(leftClass == c.ClassFC || leftClass == c.ClassGFC):
		return false
	case rightClass == c.ClassGFC && rule == c.FC: // H5
		return false
	case leftClass == c.ClassGBX && rule == c.BX:
		return false
	case rightClass == c.ClassConj && rule != c.BA: // H6
		return false
	case rule == c.LP && !isPrefixOfSentence: // P1
		return false
	case rightClass == c.ClassRP && isCombining(rule): // P2
		return false
	case rule == c.LP && rightClass == c.ClassRP: // P3
		return false
	case rule == c.FA && left.IsModifier() && rightClass == c.ClassBAMod: // M1
		return false
	}
	return true
}

// isCombining is true for rules which really combine two constituents, as opposed
// to absorbing punctuation or coordinating.
func isCombining(rule c.RuleType) bool {
	switch rule {
	case c.FA, c.BA, c.FC, c.BX, c.GFC, c.GBX:
		return true
	}
	return false
}
