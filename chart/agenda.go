package chart

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Agenda is a priority queue of items. Pop returns the item with the highest cost;
// items of equal cost are returned in insertion order.
type Agenda struct {
	heap *binaryheap.Heap
	seq  uint64
}

type entry struct {
	item *Item
	seq  uint64
}

// NewAgenda creates an empty agenda.
func NewAgenda() *Agenda {
	return &Agenda{heap: binaryheap.NewWith(betterFirst)}
}

// betterFirst orders entries by decreasing cost, then by insertion.
func betterFirst(a, b interface{}) int {
	e1, e2 := a.(entry), b.(entry)
	c1, c2 := e1.item.Cost(), e2.item.Cost()
	switch {
	case c1 > c2:
		return -1
	case c1 < c2:
		return 1
	case e1.seq < e2.seq:
		return -1
	case e1.seq > e2.seq:
		return 1
	}
	return 0
}

// Push adds an item.
func (a *Agenda) Push(item *Item) {
	a.heap.Push(entry{item: item, seq: a.seq})
	a.seq++
}

// Pop removes and returns the best item, or nil if the agenda is empty.
func (a *Agenda) Pop() *Item {
	e, ok := a.heap.Pop()
	if !ok {
		return nil
	}
	return e.(entry).item
}

// Peek returns the best item without removing it, or nil.
func (a *Agenda) Peek() *Item {
	e, ok := a.heap.Peek()
	if !ok {
		return nil
	}
	return e.(entry).item
}

// Len counts the items in the agenda.
func (a *Agenda) Len() int {
	return a.heap.Size()
}

// Empty is true if the agenda holds no items.
func (a *Agenda) Empty() bool {
	return a.heap.Empty()
}

// Pushed counts all the items ever pushed.
func (a *Agenda) Pushed() uint64 {
	return a.seq
}
