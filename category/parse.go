package category

import (
	"errors"
	"regexp"
	"strings"
)

// Errors for malformed category strings.
var (
	ErrEmpty            = errors.New("empty category")
	ErrBrackets         = errors.New("mismatched brackets")
	ErrMultipleFeatures = errors.New("more than one feature")
	ErrMalformed        = errors.New("malformed category")
)

// CCGbank markup: argument indices <n> and annotations {…}.
var markup = regexp.MustCompile(`<[0-9]+>|\{[^{}]*\}`)

// parse parses a category string. Markup is stripped first, then redundant outer
// brackets are dropped. The string is split at its outermost slash which is not
// enclosed by brackets (the rightmost one, as slashes are left-associative) and
// both operands are parsed recursively.
func (r *Registry) parse(s string) (*Category, error) {
	s = markup.ReplaceAllString(strings.TrimSpace(s), "")
	return r.parseClean(s)
}

func (r *Registry) parseClean(s string) (*Category, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	if err := checkBrackets(s); err != nil {
		return nil, err
	}
	for enclosed(s) {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return nil, ErrEmpty
	}
	if c, ok := r.byName.Load(s); ok {
		return c.(*Category), nil
	}
	i := outermostSlash(s)
	if i < 0 {
		return r.parseAtomic(s)
	}
	if i == 0 || i == len(s)-1 {
		return nil, ErrMalformed
	}
	left, err := r.parseClean(s[:i])
	if err != nil {
		return nil, err
	}
	right, err := r.parseClean(s[i+1:])
	if err != nil {
		return nil, err
	}
	slash, err := SlashFrom(rune(s[i]))
	if err != nil {
		return nil, err
	}
	return r.Functor(left, slash, right), nil
}

// parseAtomic parses base[feature].
func (r *Registry) parseAtomic(s string) (*Category, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if strings.ContainsAny(s, "()]") {
			return nil, ErrMalformed
		}
		return r.Atomic(s, ""), nil
	}
	base := s[:open]
	if base == "" || strings.ContainsAny(base, "()") {
		return nil, ErrMalformed
	}
	end := strings.IndexByte(s[open:], ']') + open
	if end <= open+1 {
		return nil, ErrMalformed
	}
	feature := s[open+1 : end]
	if strings.ContainsAny(feature, `[()/\|`) {
		return nil, ErrMalformed
	}
	if rest := s[end+1:]; rest != "" {
		if strings.HasPrefix(rest, "[") {
			return nil, ErrMultipleFeatures
		}
		return nil, ErrMalformed
	}
	return r.Atomic(base, feature), nil
}

// checkBrackets checks that round and square brackets are balanced and properly nested.
func checkBrackets(s string) error {
	stack := make([]byte, 0, 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			stack = append(stack, s[i])
		case ')', ']':
			if len(stack) == 0 {
				return ErrBrackets
			}
			open := stack[len(stack)-1]
			if (open == '(') != (s[i] == ')') {
				return ErrBrackets
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return ErrBrackets
	}
	return nil
}

// enclosed is true for "(…)", where the bracket at position 0 closes at the end.
func enclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

// outermostSlash returns the position of the rightmost slash on bracket level 0, or -1.
func outermostSlash(s string) int {
	depth, at := 0, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case '/', '\\', '|':
			if depth == 0 {
				at = i
			}
		}
	}
	return at
}
