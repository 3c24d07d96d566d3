package feature

import (
	"testing"

	"github.com/nihei9/rwsdiff/pqgram"
	"github.com/nihei9/rwsdiff/tree"
)

func identityLabel(ann string, _ []tree.Shape) string { return ann }

func TestFromBagMatchesManualSum(t *testing.T) {
	g1 := pqgram.New([]pqgram.Optional[string]{pqgram.Some("a")}, []pqgram.Optional[string]{pqgram.Some("b")})
	g2 := pqgram.New([]pqgram.Optional[string]{pqgram.Some("x")}, []pqgram.Optional[string]{pqgram.Some("y")})

	bag := pqgram.NewBag[string]()
	bag.Add(g1)
	bag.Add(g1)
	bag.Add(g2)

	got := FromBag[string](6, bag)

	want := Zero(6)
	want.Add(UnitVector(6, pqgram.Hash(g1)))
	want.Add(UnitVector(6, pqgram.Hash(g1)))
	want.Add(UnitVector(6, pqgram.Hash(g2)))

	for i := range want {
		if !approxEqual(got[i], want[i], epsilon) {
			t.Fatalf("unexpected vector at index %v: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestDecorateSubtreeEqualsGramBagSum(t *testing.T) {
	// a(b, c(d))
	src := tree.New("a",
		tree.New("b"),
		tree.New("c", tree.New("d")),
	)
	const p, q, d = 2, 2, 6

	decorated := FeatureVectorDecorator[string](src, identityLabel, p, q, d)

	// Property 2 (spec.md §8): every node's feature vector equals the sum
	// of unitVector(d, hash(g)) over all grams g in its subtree.
	var check func(n *tree.Node[Decorated[string, string]])
	check = func(n *tree.Node[Decorated[string, string]]) {
		bag := pqgram.NewBag[string]()
		tree.PostOrder(n, func(inner *tree.Node[Decorated[string, string]]) {
			bag.Add(inner.Ann.Base.Label)
		})
		want := FromBag[string](d, bag)
		got := n.Ann.Label
		for i := range want {
			if !approxEqual(got[i], want[i], 1e-9) {
				t.Fatalf("subtree feature vector mismatch at index %v: want %v, got %v", i, want[i], got[i])
			}
		}
		for _, c := range n.Children {
			check(c)
		}
	}
	check(decorated)
}

func TestZeroAndClone(t *testing.T) {
	z := Zero(4)
	if len(z) != 4 {
		t.Fatalf("expected length 4, got %v", len(z))
	}
	for _, x := range z {
		if x != 0 {
			t.Fatalf("expected zero vector, got %v", z)
		}
	}

	v := Vector{1, 2, 3}
	c := v.Clone()
	c[0] = 99
	if v[0] == 99 {
		t.Fatalf("Clone should not alias the original vector")
	}
}
