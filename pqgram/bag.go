package pqgram

// Bag is a multiset of grams. Grams are not comparable as Go values (they
// hold slices), so membership is tracked by Gram.Key() the way the teacher
// tracks duplicate grammar symbols by their spelling rather than by
// identity.
type Bag[L Label] struct {
	entries map[string]Gram[L]
	counts  map[string]int
}

// NewBag returns an empty bag.
func NewBag[L Label]() *Bag[L] {
	return &Bag[L]{
		entries: map[string]Gram[L]{},
		counts:  map[string]int{},
	}
}

// Add inserts one occurrence of g into the bag.
func (b *Bag[L]) Add(g Gram[L]) {
	k := g.Key()
	if _, ok := b.entries[k]; !ok {
		b.entries[k] = g
	}
	b.counts[k]++
}

// Len returns the total number of gram occurrences in the bag (with
// multiplicity).
func (b *Bag[L]) Len() int {
	total := 0
	for _, c := range b.counts {
		total += c
	}
	return total
}

// Each calls fn once per distinct gram, with its multiplicity.
func (b *Bag[L]) Each(fn func(g Gram[L], count int)) {
	for k, g := range b.entries {
		fn(g, b.counts[k])
	}
}
