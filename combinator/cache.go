package combinator

import (
	"github.com/npillmayer/ccg/category"
)

// Cache memoizes GetRules for the category pairs of one sentence. A parser creates
// a new cache for every sentence; caches must not be shared between concurrent parses.
type Cache struct {
	rules []Combinator
	prods map[[2]category.ID][]RuleProduction
	hits  int
}

// NewCache creates a cache for a set of combinators.
func NewCache(rules []Combinator) *Cache {
	return &Cache{
		rules: rules,
		prods: make(map[[2]category.ID][]RuleProduction),
	}
}

// Rules returns the productions for left and right, computing them at most once.
func (c *Cache) Rules(left, right *category.Category) []RuleProduction {
	key := [2]category.ID{left.ID(), right.ID()}
	if prods, ok := c.prods[key]; ok {
		c.hits++
		return prods
	}
	prods := GetRules(left, right, c.rules)
	c.prods[key] = prods
	return prods
}

// Stats returns the number of cached pairs and the number of cache hits.
func (c *Cache) Stats() (int, int) {
	return len(c.prods), c.hits
}
