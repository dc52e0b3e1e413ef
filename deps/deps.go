package deps

import (
	"fmt"

	"github.com/npillmayer/ccg/category"
)

// Dependency is a resolved predicate-argument relation: word Argument fills argument
// slot Slot of the lexical category Category of word Head.
type Dependency struct {
	Head     int
	Argument int
	Category string
	Slot     int
}

func (d Dependency) String() string {
	return fmt.Sprintf("%d:%s.%d→%d", d.Head, d.Category, d.Slot, d.Argument)
}

// Structure is the dependency structure of a constituent. Implementations must be
// immutable: every operation returns a new structure.
//
// The receiver of Apply, Compose and Compose2 is always the functor constituent,
// arg the argument constituent. Dependencies resolved by the operation are appended
// to resolved.
type Structure interface {
	Apply(arg Structure, resolved *[]Dependency) Structure
	Compose(arg Structure, resolved *[]Dependency) Structure
	Compose2(arg Structure, resolved *[]Dependency) Structure
	Conjunction() Structure
	TypeChange(to *category.Category) Structure
	ArbitraryHead() int // index of a head word
	Key() string        // structures with equal keys are interchangeable
}
