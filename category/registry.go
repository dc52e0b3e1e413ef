package category

import (
	"fmt"
	"sync"
)

// --- Registry ---------------------------------------------------------

// ID is a dense, sequential identifier for an interned category. IDs are assigned
// in the order categories are first interned in a registry.
type ID uint32

// Registry is an interning table for categories. Every structurally distinct category
// is stored exactly once. Clients usually create one registry at grammar loading time
// and share it between all parsers. Combinators will add new categories (e.g., results
// of composition) while parsing, therefore inserts are synchronized. Lookups of known
// categories are lock-free.
//
// Categories of different registries must not be mixed.
type Registry struct {
	byName sync.Map    // canonical strings and aliases → *Category
	mu     sync.Mutex  // guards inserts
	cats   []*Category // by ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cats: make([]*Category, 0, 512),
	}
}

// Intern returns the category for a category string, creating it if it is not
// already present. The string may contain CCGbank markup (argument indices like <1>
// and annotations like {_}) and redundant brackets.
//
// A malformed string results in an error. Malformed categories point to a corrupt
// grammar or model file, callers should not try to recover from it.
func (r *Registry) Intern(s string) (*Category, error) {
	if c, ok := r.byName.Load(s); ok {
		return c.(*Category), nil
	}
	c, err := r.parse(s)
	if err != nil {
		tracer().Errorf("cannot create category %q: %v", s, err)
		return nil, fmt.Errorf("category %q: %w", s, err)
	}
	r.byName.Store(s, c) // alias for the un-canonical form
	return c, nil
}

// MustIntern is like Intern, but panics on malformed category strings.
// It is intended for hard-wired categories and for tests.
func (r *Registry) MustIntern(s string) *Category {
	c, err := r.Intern(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Lookup finds an already interned category. It never creates one.
func (r *Registry) Lookup(s string) (*Category, bool) {
	if c, ok := r.byName.Load(s); ok {
		return c.(*Category), true
	}
	return nil, false
}

// Atomic returns the atomic category with base symbol base and feature feature.
// feature may be empty.
func (r *Registry) Atomic(base, feature string) *Category {
	name := base
	if feature != "" {
		name = base + "[" + feature + "]"
	}
	return r.insert(name, func() *Category {
		return &Category{
			kind:    atomic,
			base:    base,
			feature: feature,
		}
	})
}

// Functor returns the functor category left|slash|right.
func (r *Registry) Functor(left *Category, slash Slash, right *Category) *Category {
	name := left.bracketed() + slash.String() + right.bracketed()
	return r.insert(name, func() *Category {
		return &Category{
			kind:  functor,
			left:  left,
			slash: slash,
			right: right,
			nargs: left.nargs + 1,
		}
	})
}

// ByID returns the category with identifier id, or nil.
func (r *Registry) ByID(id ID) *Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) < len(r.cats) {
		return r.cats[id]
	}
	return nil
}

// Size counts the categories in a registry.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cats)
}

// Each iterates over all categories in ID order, executing a mapper function.
func (r *Registry) Each(mapper func(*Category)) {
	r.mu.Lock()
	cats := append([]*Category(nil), r.cats...)
	r.mu.Unlock()
	for _, c := range cats {
		mapper(c)
	}
}

// insert finds a category by its canonical name, inserting a new one if not found.
func (r *Registry) insert(name string, create func() *Category) *Category {
	if c, ok := r.byName.Load(name); ok {
		return c.(*Category)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byName.Load(name); ok { // somebody else has been faster
		return c.(*Category)
	}
	c := create()
	c.str = name
	c.reg = r
	c.id = ID(len(r.cats))
	r.cats = append(r.cats, c)
	r.byName.Store(name, c)
	tracer().Debugf("new category #%d = %s", c.id, name)
	return c
}
