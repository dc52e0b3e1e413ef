package tree

import (
	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/deps"
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterNode returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitNode and Leaf may return user-defined values to be
// propagated upwards of the tree. ExitNode receives the values of the children.
type Listener interface {
	EnterNode(Node, NodeCtxt) bool
	ExitNode(Node, []interface{}, NodeCtxt) interface{}
	Leaf(*Leaf, NodeCtxt) interface{}
}

// NodeCtxt is a context structure for Listeners.
type NodeCtxt struct {
	Span  ccg.Span // span of input words covered by this node
	Level int      // nesting level, 0 for the root
}

// Walk traverses a tree top-down, left to right, applying Listener-methods for all
// nodes encountered. It returns a user-defined value, calculated by the listener.
// start is the position of the first word covered by root.
func Walk(root Node, start int, listener Listener) interface{} {
	if root == nil {
		return nil
	}
	return walk(root, start, 0, listener)
}

func walk(node Node, start int, level int, listener Listener) interface{} {
	ctxt := NodeCtxt{Span: ccg.SpanOf(start, node.Length()), Level: level}
	if leaf, ok := node.(*Leaf); ok {
		return listener.Leaf(leaf, ctxt)
	}
	tracer().Debugf(">>> %s %s", node.Category(), ctxt.Span)
	var values []interface{}
	if listener.EnterNode(node, ctxt) {
		children := node.Children()
		values = make([]interface{}, len(children))
		pos := ctxt.Span.From()
		for i, ch := range children {
			values[i] = walk(ch, pos, level+1, listener)
			pos += ch.Length()
		}
	}
	return listener.ExitNode(node, values, ctxt)
}

// --- Collecting listeners --------------------------------------------------

// Leaves returns the leaves of a tree, left to right.
func Leaves(root Node) []*Leaf {
	c := &collector{}
	Walk(root, 0, c)
	return c.leaves
}

// Dependencies returns all dependencies resolved within a tree, in the order of a
// top-down, left-to-right walk.
func Dependencies(root Node) []deps.Dependency {
	c := &collector{}
	Walk(root, 0, c)
	return c.deps
}

type collector struct {
	leaves []*Leaf
	deps   []deps.Dependency
}

func (c *collector) EnterNode(node Node, ctxt NodeCtxt) bool {
	c.deps = append(c.deps, node.Resolved()...)
	return true
}

func (c *collector) ExitNode(Node, []interface{}, NodeCtxt) interface{} {
	return nil
}

func (c *collector) Leaf(leaf *Leaf, ctxt NodeCtxt) interface{} {
	c.leaves = append(c.leaves, leaf)
	return nil
}
