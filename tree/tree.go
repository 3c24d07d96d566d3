// Package tree implements the generic annotated, ordered tree that the
// RWS matching pipeline is built on. A Node[A] carries an annotation of
// caller-chosen type A and an ordered sequence of children of the same
// kind; every pipeline stage (labeling, pq-gram decoration, feature
// vectorization) produces a new tree whose annotation wraps the previous
// stage's annotation, so the type parameter grows one layer per stage.
package tree

// Node is an ordered, labeled tree node carrying an annotation of type A.
// Trees are immutable once constructed: no method mutates Children or Ann
// in place.
type Node[A any] struct {
	Ann      A
	Children []*Node[A]
}

// New constructs a node from an annotation and an ordered list of children.
func New[A any](ann A, children ...*Node[A]) *Node[A] {
	return &Node[A]{Ann: ann, Children: children}
}

// Leaf reports whether n has no children.
func (n *Node[A]) Leaf() bool {
	return len(n.Children) == 0
}

// Arity returns the number of children of n.
func (n *Node[A]) Arity() int {
	return len(n.Children)
}

// WalkFn is called once per node during a traversal.
type WalkFn[A any] func(n *Node[A])

// PostOrder visits every node of n, children before parent.
func PostOrder[A any](n *Node[A], visit WalkFn[A]) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		PostOrder(c, visit)
	}
	visit(n)
}

// PreOrder visits every node of n, parent before children.
func PreOrder[A any](n *Node[A], visit WalkFn[A]) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		PreOrder(c, visit)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func Count[A any](n *Node[A]) int {
	count := 0
	PostOrder(n, func(*Node[A]) { count++ })
	return count
}

// Map transforms every annotation in n with f, preserving shape and order
// (a node whose Children is nil keeps a nil Children). The pipeline stages
// (Label, pqgram.Decorate, feature.Decorate) follow the same shape but do
// not call Map: each is its own pass that also reads ancestor or sibling
// context.
func Map[A, B any](n *Node[A], f func(*Node[A]) B) *Node[B] {
	if n == nil {
		return nil
	}
	var children []*Node[B]
	if n.Children != nil {
		children = make([]*Node[B], len(n.Children))
	}
	for i, c := range n.Children {
		children[i] = Map(c, f)
	}
	return &Node[B]{Ann: f(n), Children: children}
}
