package tree

// Shape is the structural information about a child that a LabelFunc may
// consult without being able to see the child's annotation — only how
// many children of its own it has.
type Shape struct {
	NumChildren int
}

// Labeled is the "layered annotation" produced by Label: it prepends a
// label of caller-chosen type L in front of the previous annotation A, the
// way every later pipeline stage (pqgram.Decorated, feature.Decorated)
// prepends its own field in turn.
type Labeled[L any, A any] struct {
	Label L
	Base  A
}

// LabelFunc computes a node's label from its own annotation and the shapes
// (not annotations) of its children. It must be pure and total.
type LabelFunc[L any, A any] func(ann A, children []Shape) L

// Label decorates every node of n with a label computed by fn, in
// post-order (children are labeled before their parent, so fn always sees
// already-known child shapes). Label never fails: fn is a pure function
// over already-validated inputs.
func Label[L any, A any](n *Node[A], fn LabelFunc[L, A]) *Node[Labeled[L, A]] {
	if n == nil {
		return nil
	}

	children := make([]*Node[Labeled[L, A]], len(n.Children))
	shapes := make([]Shape, len(n.Children))
	for i, c := range n.Children {
		children[i] = Label(c, fn)
		shapes[i] = Shape{NumChildren: len(c.Children)}
	}

	return &Node[Labeled[L, A]]{
		Ann: Labeled[L, A]{
			Label: fn(n.Ann, shapes),
			Base:  n.Ann,
		},
		Children: children,
	}
}
