package combinator

import "strings"

// Logic is a logical form attached to a node of a parse tree. The parser carries it
// along without interpreting it.
type Logic interface{}

// Term is the default logical form of a derivation step: a rule applied to the
// logical forms of its operands. Form is an explicit logical form given by a grammar
// file, if any.
type Term struct {
	Rule RuleType
	Form string
	Args []Logic
}

func (t Term) String() string {
	var b strings.Builder
	b.WriteString(t.Rule.String())
	if t.Form != "" {
		b.WriteString("[" + t.Form + "]")
	}
	b.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s, ok := a.(interface{ String() string }); ok {
			b.WriteString(s.String())
		} else if a == nil {
			b.WriteString("_")
		} else if str, ok := a.(string); ok {
			b.WriteString(str)
		}
	}
	b.WriteByte(')')
	return b.String()
}
