package deps

import (
	"strconv"
	"strings"

	"github.com/npillmayer/ccg/category"
)

// slot is an unfilled argument slot of a lexical category.
type slot struct {
	head int    // word owning the slot
	cat  string // lexical category of head
	n    int    // argument number
}

// HeadStructure tracks the head word of a constituent and its open argument slots,
// innermost argument first.
type HeadStructure struct {
	head     int
	modifier bool // structure of a modifier category X|X
	raised   bool // structure of a type-raised category
	coord    bool // structure of a conjunction node X\X
	pending  []slot
}

var _ Structure = (*HeadStructure)(nil)

// Leaf creates the structure for word index word with lexical category cat.
func Leaf(word int, cat *category.Category) *HeadStructure {
	h := &HeadStructure{
		head:     word,
		modifier: cat.IsModifier(),
		raised:   cat.IsTypeRaised(),
	}
	h.pending = make([]slot, cat.NumberOfArguments())
	for i := range h.pending {
		h.pending[i] = slot{head: word, cat: cat.String(), n: i + 1}
	}
	return h
}

// ArbitraryHead returns the head word of h.
func (h *HeadStructure) ArbitraryHead() int {
	return h.head
}

// Apply fills the outermost open slot of the functor h with the head of arg.
func (h *HeadStructure) Apply(arg Structure, resolved *[]Dependency) Structure {
	return h.combine(arg, 0, resolved)
}

// Compose fills the outermost open slot of h, leaving the outermost slot of arg open.
func (h *HeadStructure) Compose(arg Structure, resolved *[]Dependency) Structure {
	return h.combine(arg, 1, resolved)
}

// Compose2 fills the outermost open slot of h, leaving the two outermost slots of
// arg open.
func (h *HeadStructure) Compose2(arg Structure, resolved *[]Dependency) Structure {
	return h.combine(arg, 2, resolved)
}

// combine is the common operation of application (open = 0) and composition.
func (h *HeadStructure) combine(argument Structure, open int, resolved *[]Dependency) Structure {
	arg, ok := argument.(*HeadStructure)
	if !ok {
		panic("HeadStructure cannot be combined with foreign dependency structures")
	}
	if h.coord { // X\X of a coordination, arg is the left conjunct
		return &HeadStructure{head: arg.head, pending: arg.pending}
	}
	if h.raised { // roles are switched: arg is the functor
		return arg.fill(len(arg.pending)-1-open, h.head, 0, nil, resolved)
	}
	var keep []slot
	if open > 0 && open <= len(arg.pending) {
		keep = arg.pending[len(arg.pending)-open:]
	}
	if h.modifier { // open slots of the modified constituent survive
		r := h.fill(len(h.pending)-1, arg.head, 1, arg.pending, resolved).(*HeadStructure)
		r.head = arg.head
		return r
	}
	return h.fill(len(h.pending)-1, arg.head, 1, keep, resolved)
}

// fill fills open slot at with word, drops the drop outermost slots of h and appends
// slots keep.
func (h *HeadStructure) fill(at int, word int, drop int, keep []slot, resolved *[]Dependency) Structure {
	r := &HeadStructure{head: h.head}
	if at >= 0 && at < len(h.pending) {
		s := h.pending[at]
		d := Dependency{Head: s.head, Argument: word, Category: s.cat, Slot: s.n}
		tracer().Debugf("resolved dependency %s", d)
		if resolved != nil {
			*resolved = append(*resolved, d)
		}
	}
	r.pending = make([]slot, 0, len(h.pending)+len(keep))
	for i, s := range h.pending {
		if i != at && i < len(h.pending)-drop {
			r.pending = append(r.pending, s)
		}
	}
	r.pending = append(r.pending, keep...)
	return r
}

// Conjunction marks h as the structure of a conjunction node X\X.
func (h *HeadStructure) Conjunction() Structure {
	return &HeadStructure{head: h.head, coord: true, pending: h.pending}
}

// TypeChange re-interprets h for the result category of a unary rule. Arguments of
// the new category are owned by the head word of h.
func (h *HeadStructure) TypeChange(to *category.Category) Structure {
	r := &HeadStructure{
		head:     h.head,
		modifier: to.IsModifier(),
		raised:   to.IsTypeRaised(),
	}
	if r.raised {
		return r
	}
	r.pending = make([]slot, to.NumberOfArguments())
	for i := range r.pending {
		r.pending[i] = slot{head: h.head, cat: to.String(), n: i + 1}
	}
	return r
}

// Key lists head and open slots of h.
func (h *HeadStructure) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(h.head))
	switch {
	case h.coord:
		b.WriteByte('&')
	case h.raised:
		b.WriteByte('^')
	case h.modifier:
		b.WriteByte('*')
	}
	for _, s := range h.pending {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(s.head))
		b.WriteByte(':')
		b.WriteString(s.cat)
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.n))
	}
	return b.String()
}

func (h *HeadStructure) String() string {
	return "deps[" + h.Key() + "]"
}
