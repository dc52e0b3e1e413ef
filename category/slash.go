package category

import "fmt"

// Slash is the direction in which a functor category looks for its argument.
type Slash uint8

// Slashes of functor categories. Either is written '|' and matches both directions.
const (
	Fwd    Slash = iota // '/'
	Bwd                 // '\'
	Either              // '|'
)

// SlashFrom returns the slash for one of '/', '\' or '|'.
func SlashFrom(r rune) (Slash, error) {
	switch r {
	case '/':
		return Fwd, nil
	case '\\':
		return Bwd, nil
	case '|':
		return Either, nil
	}
	return Fwd, fmt.Errorf("unknown slash %q", r)
}

// Matches is true if s and other are the same direction, or if one of them is Either.
func (s Slash) Matches(other Slash) bool {
	return s == Either || other == Either || s == other
}

func (s Slash) String() string {
	switch s {
	case Fwd:
		return "/"
	case Bwd:
		return `\`
	case Either:
		return "|"
	}
	panic(fmt.Sprintf("unknown slash value %d", s))
}
