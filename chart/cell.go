package chart

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"
)

// Cell holds the items of one span. Cells are append-only: an item, once added,
// may only be displaced by a better item of the same equivalence class.
type Cell interface {
	Add(item *Item) bool // true if item has been added
	Items() []*Item      // live items
	Len() int            // number of live items
}

// CellFactory creates empty cells.
type CellFactory func() Cell

// --- One best --------------------------------------------------------------

// Cell1Best keeps the first item of every equivalence class. This is correct for
// A* parsing, where the first item to arrive is the best one.
type Cell1Best struct {
	keys  map[Key]struct{}
	items []*Item
}

// NewCell1Best creates an empty cell.
func NewCell1Best() Cell {
	return &Cell1Best{keys: make(map[Key]struct{})}
}

// Add adds item if its class is not yet present.
func (c *Cell1Best) Add(item *Item) bool {
	if _, ok := c.keys[item.Key()]; ok {
		return false
	}
	c.keys[item.Key()] = struct{}{}
	c.items = append(c.items, item)
	return true
}

// Items returns the items in order of insertion.
func (c *Cell1Best) Items() []*Item { return c.items }

// Len counts the items.
func (c *Cell1Best) Len() int { return len(c.items) }

// Cell1BestCKY keeps the best item of every equivalence class.
type Cell1BestCKY struct {
	keys  map[Key]int // index into items
	items []*Item
}

// NewCell1BestCKY creates an empty cell.
func NewCell1BestCKY() Cell {
	return &Cell1BestCKY{keys: make(map[Key]int)}
}

// Add adds item if its class is not yet present, or replaces a worse item of its class.
func (c *Cell1BestCKY) Add(item *Item) bool {
	if i, ok := c.keys[item.Key()]; ok {
		if item.Cost() > c.items[i].Cost() {
			c.items[i] = item
			return true
		}
		return false
	}
	c.keys[item.Key()] = len(c.items)
	c.items = append(c.items, item)
	return true
}

// Items returns one item per class, classes in order of first insertion.
func (c *Cell1BestCKY) Items() []*Item { return c.items }

// Len counts the items.
func (c *Cell1BestCKY) Len() int { return len(c.items) }

// --- N best ----------------------------------------------------------------

// CellNBest keeps the n best items of every equivalence class.
type CellNBest struct {
	n       int
	classes map[Key]*arraylist.List // items ordered by decreasing cost
	order   []Key
	dedup   bool // treat items with equal dependency hash as equal
	count   int
}

// NewCellNBest creates a cell factory for n-best cells.
func NewCellNBest(n int) CellFactory {
	return func() Cell {
		return &CellNBest{n: n, classes: make(map[Key]*arraylist.List)}
	}
}

// NewCellNBestHashed creates a cell factory for n-best cells, where items with equal
// dependency hashes occupy a single slot.
func NewCellNBestHashed(n int) CellFactory {
	return func() Cell {
		return &CellNBest{n: n, classes: make(map[Key]*arraylist.List), dedup: true}
	}
}

// Add inserts item if its class holds less than n items or if it is better than the
// worst item of its class.
func (c *CellNBest) Add(item *Item) bool {
	list, ok := c.classes[item.Key()]
	if !ok {
		list = arraylist.New()
		c.classes[item.Key()] = list
		c.order = append(c.order, item.Key())
	}
	if c.dedup {
		for i := 0; i < list.Size(); i++ {
			v, _ := list.Get(i)
			other := v.(*Item)
			if other.Node().DepHash() == item.Node().DepHash() {
				if item.Cost() <= other.Cost() {
					return false
				}
				list.Remove(i)
				c.count--
				break
			}
		}
	}
	at := list.Size()
	for i := 0; i < list.Size(); i++ {
		v, _ := list.Get(i)
		if item.Cost() > v.(*Item).Cost() {
			at = i
			break
		}
	}
	if at >= c.n {
		return false
	}
	list.Insert(at, item)
	c.count++
	if list.Size() > c.n {
		list.Remove(list.Size() - 1)
		c.count--
	}
	return true
}

// Items returns all items, classes in order of first insertion, best items first
// within a class.
func (c *CellNBest) Items() []*Item {
	items := make([]*Item, 0, c.count)
	for _, k := range c.order {
		for _, v := range c.classes[k].Values() {
			items = append(items, v.(*Item))
		}
	}
	return items
}

// Len counts the items.
func (c *CellNBest) Len() int { return c.count }

// --- No dynamic programming ------------------------------------------------

// CellNoDynamicProgram keeps the n best items of a span, regardless of equivalence.
// It is used for beam search.
type CellNoDynamicProgram struct {
	n    int
	heap *binaryheap.Heap // worst item on top
	seq  uint64
}

var worstFirst utils.Comparator = func(a, b interface{}) int {
	return -betterFirst(a, b)
}

// NewCellNoDynamicProgram creates a cell factory for cells with beam size n.
func NewCellNoDynamicProgram(n int) CellFactory {
	return func() Cell {
		return &CellNoDynamicProgram{
			n:    n,
			heap: binaryheap.NewWith(worstFirst),
		}
	}
}

// Add inserts item if the cell holds less than n items, or if item is better than the
// worst item of the cell. Of items with equal cost, earlier ones are preferred.
func (c *CellNoDynamicProgram) Add(item *Item) bool {
	e := entry{item: item, seq: c.seq}
	if c.heap.Size() >= c.n {
		worst, _ := c.heap.Peek()
		if betterFirst(e, worst) >= 0 {
			return false
		}
		c.heap.Pop()
	}
	c.heap.Push(e)
	c.seq++
	return true
}

// Items returns the items, best first.
func (c *CellNoDynamicProgram) Items() []*Item {
	values := c.heap.Values()
	entries := make([]entry, len(values))
	for i, v := range values {
		entries[i] = v.(entry)
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return betterFirst(a, b) })
	items := make([]*Item, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items
}

// Len counts the items.
func (c *CellNoDynamicProgram) Len() int { return c.heap.Size() }
