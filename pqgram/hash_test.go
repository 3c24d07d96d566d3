package pqgram

import "testing"

func TestHashDeterministic(t *testing.T) {
	g := New([]Optional[string]{Some("a")}, []Optional[string]{Some("b"), Some("c")})
	h1 := Hash(g)
	h2 := Hash(g)
	if h1 != h2 {
		t.Fatalf("expected Hash to be deterministic, got %v and %v", h1, h2)
	}
}

func TestHashDistinguishesGrams(t *testing.T) {
	g1 := New([]Optional[string]{Some("a")}, []Optional[string]{Some("b")})
	g2 := New([]Optional[string]{Some("a")}, []Optional[string]{Some("z")})
	if Hash(g1) == Hash(g2) {
		t.Fatalf("expected different grams to hash differently (collision is possible but astronomically unlikely here)")
	}
}
