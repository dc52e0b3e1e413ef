package combinator

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/deps"
)

// --- Unary rules -----------------------------------------------------------

// UnaryRule is a type-raising or type-changing rule From → To. Logic is an optional
// explicit logical form for the rule.
type UnaryRule struct {
	id    int
	From  *category.Category
	To    *category.Category
	Logic string
}

// NewUnaryRule creates a unary rule which is not part of a rule set.
func NewUnaryRule(from, to *category.Category, logic string) *UnaryRule {
	return &UnaryRule{id: -1, From: from, To: to, Logic: logic}
}

// ID is the position of a rule within its rule set, or -1.
func (u *UnaryRule) ID() int {
	return u.id
}

// RuleType is ForwardTypeRaise, BackwardTypeRaise or TypeChange.
func (u *UnaryRule) RuleType() RuleType {
	switch {
	case u.To.IsForwardTypeRaised():
		return ForwardTypeRaise
	case u.To.IsBackwardTypeRaised():
		return BackwardTypeRaise
	}
	return TypeChange
}

// IsTypeRaising is true for forward and backward type-raising.
func (u *UnaryRule) IsTypeRaising() bool {
	return u.To.IsTypeRaised()
}

// ApplyDependencies returns the dependency structure of the result, or nil if s is nil.
func (u *UnaryRule) ApplyDependencies(s deps.Structure) deps.Structure {
	if s == nil {
		return nil
	}
	return s.TypeChange(u.To)
}

// ApplyLogic wraps the logical form of the child.
func (u *UnaryRule) ApplyLogic(child Logic) Logic {
	if child == nil && u.Logic == "" {
		return nil
	}
	return Term{Rule: u.RuleType(), Form: u.Logic, Args: []Logic{child}}
}

// MarshalText writes a rule as a line of a unary rules file:
// from and to, separated by a tab, followed by the quoted logic if present.
func (u *UnaryRule) MarshalText() ([]byte, error) {
	if u.From == nil || u.To == nil {
		return nil, fmt.Errorf("incomplete unary rule")
	}
	b := []byte(u.From.String() + "\t" + u.To.String())
	if u.Logic != "" {
		b = append(b, '\t')
		b = strconv.AppendQuote(b, u.Logic)
	}
	return b, nil
}

func (u *UnaryRule) String() string {
	return fmt.Sprintf("%s → %s", u.From, u.To)
}

// UnaryRules is a set of unary rules, indexed by the category they apply to.
// A rule set is built once and then shared read-only.
type UnaryRules struct {
	mu     sync.RWMutex
	rules  []*UnaryRule
	byFrom map[category.ID][]*UnaryRule
}

// NewUnaryRules creates an empty set of unary rules.
func NewUnaryRules() *UnaryRules {
	return &UnaryRules{byFrom: make(map[category.ID][]*UnaryRule)}
}

// Add adds rule from → to to the set.
func (us *UnaryRules) Add(from, to *category.Category, logic string) *UnaryRule {
	us.mu.Lock()
	defer us.mu.Unlock()
	u := &UnaryRule{id: len(us.rules), From: from, To: to, Logic: logic}
	us.rules = append(us.rules, u)
	us.byFrom[from.ID()] = append(us.byFrom[from.ID()], u)
	tracer().Debugf("unary rule #%d: %s", u.id, u)
	return u
}

// For returns the rules applicable to category c. If c carries feature [nb], rules
// for c without [nb] apply as well.
func (us *UnaryRules) For(c *category.Category) []*UnaryRule {
	if us == nil {
		return nil
	}
	us.mu.RLock()
	defer us.mu.RUnlock()
	rules := us.byFrom[c.ID()]
	if bare := c.DropFeature(category.NonBare); bare != c {
		if more := us.byFrom[bare.ID()]; len(more) > 0 {
			rules = append(append([]*UnaryRule(nil), rules...), more...)
		}
	}
	return rules
}

// ByID returns rule number id.
func (us *UnaryRules) ByID(id int) *UnaryRule {
	us.mu.RLock()
	defer us.mu.RUnlock()
	if id < 0 || id >= len(us.rules) {
		return nil
	}
	return us.rules[id]
}

// Len counts the rules in a set.
func (us *UnaryRules) Len() int {
	if us == nil {
		return 0
	}
	us.mu.RLock()
	defer us.mu.RUnlock()
	return len(us.rules)
}
