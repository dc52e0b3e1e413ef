package deps

import (
	"encoding/binary"

	"github.com/cnf/structhash"
)

// Hasher computes order-independent hashes of sets of dependencies. Derivations with
// equal dependency sets get equal hashes, regardless of how they have been derived.
//
// Hash values are content hashes, therefore they are stable across runs and across
// sentences. A Hasher caches the values for a single sentence and must not be shared
// between concurrent parses.
type Hasher struct {
	labelled   map[Dependency]uint64
	unlabelled map[[2]int]uint64
}

// NewHasher creates a hasher for one sentence.
func NewHasher() *Hasher {
	return &Hasher{
		labelled:   make(map[Dependency]uint64),
		unlabelled: make(map[[2]int]uint64),
	}
}

// unlabelledDependency is a dependency without category and slot.
type unlabelledDependency struct {
	Head     int
	Argument int
}

// Hash is the hash of a set of dependencies. The hash of an empty set is 0.
// Hashes of disjoint sets may be combined with XOR.
func (h *Hasher) Hash(deps []Dependency) uint64 {
	var hash uint64
	for _, d := range deps {
		v, ok := h.labelled[d]
		if !ok {
			v = digest(d)
			h.labelled[d] = v
		}
		hash ^= v
	}
	return hash
}

// Unlabelled is the hash of a set of dependencies, ignoring categories and argument slots.
func (h *Hasher) Unlabelled(deps []Dependency) uint64 {
	var hash uint64
	for _, d := range deps {
		key := [2]int{d.Head, d.Argument}
		v, ok := h.unlabelled[key]
		if !ok {
			v = digest(unlabelledDependency{Head: d.Head, Argument: d.Argument})
			h.unlabelled[key] = v
		}
		hash ^= v
	}
	return hash
}

func digest(v interface{}) uint64 {
	sum := structhash.Md5(v, 1)
	return binary.LittleEndian.Uint64(sum[:8])
}
