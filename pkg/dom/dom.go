// Package dom builds LilyPond documents from a tree of typed nodes and prints
// them as properly indented source text.
package dom

import (
	"iter"
	"slices"
)

// Node is one element of a document tree. The set of node types is closed.
type Node interface {
	// Parent returns the container holding the node, or nil.
	Parent() Container
	base() *nodeBase
	clone() Node
}

// Container is a node with ordered children.
type Container interface {
	Node
	Children() []Node
	Len() int
	Append(nodes ...Node)
	Insert(i int, n Node)
	Remove(n Node) bool
	Replace(old, n Node) bool
	asBranch() *branch
}

type nodeBase struct {
	parent Container
	// Before and After ask for at least that many newlines around the node.
	Before, After int
}

func (b *nodeBase) Parent() Container { return b.parent }
func (b *nodeBase) base() *nodeBase   { return b }

type branch struct {
	nodeBase
	self     Container
	children []Node
	// Multiline puts every child on a line of its own.
	Multiline bool
}

func (b *branch) asBranch() *branch { return b }

func (b *branch) init(self Container, children []Node) {
	b.self = self
	b.Append(children...)
}

func (b *branch) Children() []Node {
	return slices.Clone(b.children)
}

func (b *branch) Len() int {
	return len(b.children)
}

// Append adds nodes at the end, taking them away from their old parent.
func (b *branch) Append(nodes ...Node) {
	for _, n := range nodes {
		b.Insert(len(b.children), n)
	}
}

// Insert puts n at index i, taking it away from its old parent.
func (b *branch) Insert(i int, n Node) {
	if n == nil {
		return
	}
	b.adopt(n)
	if old := n.Parent(); old != nil {
		ob := old.asBranch()
		if j := slices.Index(ob.children, n); j >= 0 {
			ob.children = slices.Delete(ob.children, j, j+1)
			if ob == b && j < i {
				i--
			}
		}
	}
	i = min(max(i, 0), len(b.children))
	b.children = slices.Insert(b.children, i, n)
	n.base().parent = b.self
}

// adopt panics when n is the container itself or one of its ancestors.
func (b *branch) adopt(n Node) {
	if Node(b.self) == n {
		panic("dom: node appended to itself")
	}
	for a := range Ancestors(b.self) {
		if Node(a) == n {
			panic("dom: node appended to its own descendant")
		}
	}
}

// Remove detaches n and reports whether it was a child.
func (b *branch) Remove(n Node) bool {
	i := slices.Index(b.children, n)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	n.base().parent = nil
	return true
}

// Replace puts n where old was. old is detached.
func (b *branch) Replace(old, n Node) bool {
	i := slices.Index(b.children, old)
	if i < 0 {
		return false
	}
	b.Remove(old)
	b.Insert(i, n)
	return true
}

// Ancestors yields the parent of n, its parent and so on up to the root.
func Ancestors(n Node) iter.Seq[Container] {
	return func(yield func(Container) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Ancestor returns the nearest ancestor of type T.
func Ancestor[T Container](n Node) (T, bool) {
	for a := range Ancestors(n) {
		if t, ok := a.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Walk yields n and all its descendants depth first.
func Walk(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(n, yield)
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	if c, ok := n.(Container); ok {
		for _, ch := range c.asBranch().children {
			if !walk(ch, yield) {
				return false
			}
		}
	}
	return true
}

// Copy returns a deep copy of n that has no parent.
func Copy(n Node) Node {
	c := n.clone()
	c.base().parent = nil
	if cc, ok := c.(Container); ok {
		b := cc.asBranch()
		old := b.children
		b.self = cc
		b.children = nil
		for _, ch := range old {
			b.Append(Copy(ch))
		}
	}
	return c
}
