package pqgram

import "github.com/nihei9/rwsdiff/tree"

// Decorated is the annotation produced by Decorate: the previous label L
// is replaced by its Gram, and the annotation that came before labeling
// (A) is carried through unchanged — the same "layered annotation" shape
// tree.Label uses.
type Decorated[L Label, A any] = tree.Labeled[Gram[L], A]

// provisional is pass 1's output: the stem is final, the base is not yet
// known (it depends on the node's position among its siblings, which pass
// 1 cannot see while descending root-ward).
type provisional[L Label, A any] struct {
	ownLabel L
	base     A
	stem     []Optional[L]
	children []*provisional[L, A]
}

// Decorate runs the two-pass pq-gram algorithm of spec.md §4.2 over a
// labeled tree, producing a tree whose annotation carries each node's
// Gram in place of its raw label. p and q may be zero; p=0 yields an
// empty stem everywhere, q=0 an empty base everywhere.
func Decorate[L Label, A any](n *tree.Node[tree.Labeled[L, A]], p, q int) *tree.Node[Decorated[L, A]] {
	if n == nil {
		return nil
	}
	prov := pass1(n, nil, p)
	rootBase := padToSize[L](q, toOptional(siblingLabels(prov)))
	return pass2(prov, rootBase, q)
}

// pass1 threads the ancestor label list (most-recent first) top-down and
// assigns each node its final stem.
func pass1[L Label, A any](n *tree.Node[tree.Labeled[L, A]], ancestors []L, p int) *provisional[L, A] {
	stem := padToSize[L](p, toOptional(ancestors))

	childAncestors := make([]L, len(ancestors)+1)
	childAncestors[0] = n.Ann.Label
	copy(childAncestors[1:], ancestors)

	children := make([]*provisional[L, A], len(n.Children))
	for i, c := range n.Children {
		children[i] = pass1(c, childAncestors, p)
	}

	return &provisional[L, A]{
		ownLabel: n.Ann.Label,
		base:     n.Ann.Base,
		stem:     stem,
		children: children,
	}
}

// siblingLabels returns the own-label of each of n's children, in order —
// the pool pass 2 draws sibling windows from.
func siblingLabels[L Label, A any](n *provisional[L, A]) []L {
	labels := make([]L, len(n.children))
	for i, c := range n.children {
		labels[i] = c.ownLabel
	}
	return labels
}

// pass2 assigns n's final base (passed down by its caller — the root's
// caller is Decorate, every other node's caller is its parent below) and
// recurses, assigning each child a base drawn from the consecutive window
// of sibling labels starting at that child.
func pass2[L Label, A any](n *provisional[L, A], base []Optional[L], q int) *tree.Node[Decorated[L, A]] {
	labels := siblingLabels(n)

	children := make([]*tree.Node[Decorated[L, A]], len(n.children))
	remaining := labels
	for i, c := range n.children {
		childBase := padToSize[L](q, toOptional(remaining))
		children[i] = pass2(c, childBase, q)
		remaining = remaining[1:]
	}

	return tree.New(Decorated[L, A]{
		Label: Gram[L]{Stem: n.stem, Base: base},
		Base:  n.base,
	}, children...)
}

// PQGrams labels n with label, decorates the result with pq-grams, and
// collects every node's gram into a bag — the external pqGrams operation
// of spec.md §6.
func PQGrams[L Label, A any](n *tree.Node[A], label tree.LabelFunc[L, A], p, q int) *Bag[L] {
	labeled := tree.Label(n, label)
	decorated := Decorate[L](labeled, p, q)
	bag := NewBag[L]()
	tree.PostOrder(decorated, func(nd *tree.Node[Decorated[L, A]]) {
		bag.Add(nd.Ann.Label)
	})
	return bag
}
