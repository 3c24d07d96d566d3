// Package feature turns bags of pq-grams into fixed-dimension real vectors
// by hash-seeded random projection (spec.md §4.3), and decorates a
// pq-gram-annotated tree so every node's annotation carries its subtree's
// feature vector.
package feature

import (
	"gonum.org/v1/gonum/floats"

	"github.com/nihei9/rwsdiff/pqgram"
	"github.com/nihei9/rwsdiff/tree"
)

// Vector is a fixed-dimension real-valued feature vector.
type Vector []float64

// Zero returns the zero vector of length d.
func Zero(d int) Vector {
	return make(Vector, d)
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Add accumulates other into v in place and returns v, using gonum's
// floats package the way gonum.org/v1/gonum's own vector helpers do.
func (v Vector) Add(other Vector) Vector {
	floats.Add(v, other)
	return v
}

// Norm returns the Euclidean (L2) magnitude of v.
func (v Vector) Norm() float64 {
	return floats.Norm(v, 2)
}

// FromBag computes the feature vector of a bag of grams: the element-wise
// sum, over every gram occurrence (with multiplicity), of
// UnitVector(d, Hash(gram)).
func FromBag[L pqgram.Label](d int, bag *pqgram.Bag[L]) Vector {
	sum := Zero(d)
	bag.Each(func(g pqgram.Gram[L], count int) {
		if count <= 0 {
			return
		}
		uv := UnitVector(d, pqgram.Hash(g))
		for i := 0; i < count; i++ {
			sum.Add(uv)
		}
	})
	return sum
}

// Decorated is the annotation feature.Decorate prepends: the subtree's
// feature vector, layered in front of whatever annotation the pq-gram
// pipeline produced.
type Decorated[L pqgram.Label, A any] = tree.Labeled[Vector, pqgram.Decorated[L, A]]

// Decorate walks a pq-gram-annotated tree post-order and assigns every
// node the feature vector of its subtree: the sum of its children's
// vectors plus one UnitVector seeded by its own gram's hash. This single
// pass computes the same result as vectorizing the bag of every gram in
// the subtree (spec.md §4.3), without ever materializing that bag.
func Decorate[L pqgram.Label, A any](n *tree.Node[pqgram.Decorated[L, A]], d int) *tree.Node[Decorated[L, A]] {
	if n == nil {
		return nil
	}

	children := make([]*tree.Node[Decorated[L, A]], len(n.Children))
	sum := Zero(d)
	for i, c := range n.Children {
		decorated := Decorate[L](c, d)
		children[i] = decorated
		sum.Add(decorated.Ann.Label)
	}
	sum.Add(UnitVector(d, pqgram.Hash(n.Ann.Label)))

	return tree.New(Decorated[L, A]{
		Label: sum,
		Base:  n.Ann,
	}, children...)
}

// FeatureVectorDecorator is the composed external operation of spec.md §6:
// label n, decorate it with pq-grams, then decorate the result with
// feature vectors, in one call.
func FeatureVectorDecorator[L pqgram.Label, A any](n *tree.Node[A], label tree.LabelFunc[L, A], p, q, d int) *tree.Node[Decorated[L, A]] {
	labeled := tree.Label(n, label)
	grammed := pqgram.Decorate[L](labeled, p, q)
	return Decorate[L](grammed, d)
}
