package chart

import "fmt"

// Chart is a triangular table of cells, one for every span of a sentence.
// Cells are created on first use. A chart belongs to a single parse.
type Chart struct {
	n       int
	cells   [][]Cell // [start][length-1]
	newCell CellFactory
	size    int
}

// New creates a chart for a sentence of n words.
func New(n int, factory CellFactory) *Chart {
	c := &Chart{
		n:       n,
		cells:   make([][]Cell, n),
		newCell: factory,
	}
	for start := 0; start < n; start++ {
		c.cells[start] = make([]Cell, n-start)
	}
	return c
}

// SentenceLength returns the number of words of a chart's sentence.
func (c *Chart) SentenceLength() int {
	return c.n
}

// Cell returns the cell for span (start, start+length), creating it if necessary.
func (c *Chart) Cell(start, length int) Cell {
	c.check(start, length)
	cell := c.cells[start][length-1]
	if cell == nil {
		cell = c.newCell()
		c.cells[start][length-1] = cell
	}
	return cell
}

// Peek returns the cell for span (start, start+length), or nil if it has not yet
// been created.
func (c *Chart) Peek(start, length int) Cell {
	if start < 0 || length < 1 || start+length > c.n {
		return nil
	}
	return c.cells[start][length-1]
}

// Add adds an item to the cell for its span.
func (c *Chart) Add(item *Item) bool {
	if c.Cell(item.Start(), item.Length()).Add(item) {
		c.size++
		return true
	}
	return false
}

// Size counts the items added to a chart. Items displaced by better ones are counted
// as well.
func (c *Chart) Size() int {
	return c.size
}

func (c *Chart) check(start, length int) {
	if start < 0 || length < 1 || start+length > c.n {
		panic(fmt.Sprintf("span (%d…%d) out of range for sentence of length %d",
			start, start+length, c.n))
	}
}
