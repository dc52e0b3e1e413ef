package combinator

import (
	"fmt"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/deps"
)

// SpecialCombinator is a hand-written rule for a fixed triple of categories, for
// constructions the standard rules will not derive. Examples from CCGbank are
//
//     NP  ,  → S/S       (head left)
//     ,   NP → (S\NP)\(S\NP)
//
type SpecialCombinator struct {
	rule
	left, right, result *category.Category
	headLeft            bool
}

var _ Combinator = (*SpecialCombinator)(nil)

// NewSpecial creates a special combinator left right → result. All three categories
// must be from the same registry.
func NewSpecial(left, right, result *category.Category, headIsLeft bool) *SpecialCombinator {
	return &SpecialCombinator{
		rule:     rule{Special},
		left:     left,
		right:    right,
		result:   result,
		headLeft: headIsLeft,
	}
}

// CanApply checks if left and right match the categories of s.
func (s *SpecialCombinator) CanApply(left, right *category.Category) bool {
	return s.left.Matches(left) && s.right.Matches(right)
}

// Apply returns the result category of s.
func (s *SpecialCombinator) Apply(left, right *category.Category) *category.Category {
	return s.result
}

// HeadIsLeft returns the head side of s.
func (s *SpecialCombinator) HeadIsLeft(left, right *category.Category) bool {
	return s.headLeft
}

// ApplyDependencies re-interprets the structure of the head side for the result category.
func (s *SpecialCombinator) ApplyDependencies(l, r deps.Structure, resolved *[]deps.Dependency) deps.Structure {
	if l == nil || r == nil {
		return nil
	}
	if s.headLeft {
		return l.TypeChange(s.result)
	}
	return r.TypeChange(s.result)
}

// ApplyLogic returns a Term with the form of the result category.
func (s *SpecialCombinator) ApplyLogic(left, right Logic) Logic {
	return Term{Rule: Special, Form: s.result.String(), Args: []Logic{left, right}}
}

// Left is the category the left operand has to match.
func (s *SpecialCombinator) Left() *category.Category { return s.left }

// Right is the category the right operand has to match.
func (s *SpecialCombinator) Right() *category.Category { return s.right }

// Result is the result category.
func (s *SpecialCombinator) Result() *category.Category { return s.result }

func (s *SpecialCombinator) String() string {
	head := "right"
	if s.headLeft {
		head = "left"
	}
	return fmt.Sprintf("%s %s → %s (%s)", s.left, s.right, s.result, head)
}
