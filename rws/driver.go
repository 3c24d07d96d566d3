package rws

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/nihei9/rwsdiff/feature"
	"github.com/nihei9/rwsdiff/kdtree"
)

// UnmappedTerm is the transient record spec.md §3 defines for internal use
// inside the driver: an old-tree term's position among its siblings, its
// top-level feature vector, and the term itself.
type UnmappedTerm[T any] struct {
	Index   int
	Feature feature.Vector
	Term    T
}

// FeatureOf extracts a term's top-level feature vector. Supplying this as
// a plain function — rather than requiring T to implement an interface —
// matches how tree.LabelFunc and pqgram.Decorate take their label
// function explicitly instead of constraining the annotation type.
type FeatureOf[T any] func(T) feature.Vector

// RWS is the external rws operation of spec.md §6. Given a comparator and
// an ordered old-tree and new-tree sibling list, it produces an ordered
// diff list.
//
// The trivial cases (either list empty) are handled directly per spec.md
// §4.5. The general case builds a k-d tree over the old list's feature
// vectors, walks the new list in order querying it, and commits a match
// only when the nearest old term is still unmapped, its index is >= the
// largest index matched so far (monotonicity), and the comparator accepts
// the pair. Unmatched old terms become Deletes, appended at the end in
// ascending old-index order (spec.md §8 end-to-end scenario 6).
func RWS[T any](cmp Comparator[T], featureOf FeatureOf[T], as, bs []T) []Diff[T] {
	if len(as) == 0 && len(bs) == 0 {
		return nil
	}
	if len(as) == 0 {
		out := make([]Diff[T], len(bs))
		for i, b := range bs {
			out[i] = InsertOf(b)
		}
		return out
	}
	if len(bs) == 0 {
		out := make([]Diff[T], len(as))
		for i, a := range as {
			out[i] = DeleteOf(a)
		}
		return out
	}

	terms := make([]UnmappedTerm[T], len(as))
	points := make([]kdtree.Point[int], len(as))
	// unmapped tracks old-tree indices not yet matched, keyed by index
	// for O(1) membership and removal — resolving spec.md §9's open
	// question about the source's O(|as|) linear scan in favor of the
	// log-linear behavior spec.md §2 demands.
	unmapped := hashset.New()
	for i, a := range as {
		fv := featureOf(a)
		terms[i] = UnmappedTerm[T]{Index: i, Feature: fv, Term: a}
		points[i] = kdtree.Point[int]{Payload: i, Coord: []float64(fv)}
		unmapped.Add(i)
	}
	idx := kdtree.Build(points)

	var out []Diff[T]
	previous := -1
	for _, b := range bs {
		query := []float64(featureOf(b))
		committed := false

		if nearest, ok := idx.Nearest(query); ok {
			i := nearest.Payload
			if unmapped.Contains(i) && i >= previous {
				if d, ok := cmp(terms[i].Term, b); ok {
					out = append(out, d)
					previous = i
					unmapped.Remove(i)
					committed = true
				}
			}
		}

		if !committed {
			out = append(out, InsertOf(b))
		}
	}

	var deletedIdx []int
	for _, v := range unmapped.Values() {
		deletedIdx = append(deletedIdx, v.(int))
	}
	sort.Ints(deletedIdx)
	for _, i := range deletedIdx {
		out = append(out, DeleteOf(terms[i].Term))
	}

	return out
}
