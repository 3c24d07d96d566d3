package feature

import "math/rand"

// UnitVector draws a deterministic pseudo-random vector of dimension d
// seeded by the integer hash h and normalizes it to Euclidean magnitude 1
// (spec.md §4.3).
//
// PRNG choice: this implementation seeds the standard library's
// math/rand.Source (the ALFG algorithm Go's runtime has shipped since
// go1.0) with int64(h) and draws d standard-normal samples via
// (*rand.Rand).NormFloat64. Any documented PRNG satisfies spec.md's
// contract — reproducibility is only required within one implementation,
// not across implementations using different algorithms — and no
// dedicated PRNG package appears anywhere in the retrieved example
// corpus, so the standard library is used here without reaching for a
// third-party substitute.
func UnitVector(d int, h uint64) Vector {
	rng := rand.New(rand.NewSource(int64(h)))

	v := make(Vector, d)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	norm := v.Norm()
	if norm == 0 {
		// A zero draw across all d dimensions is possible only in
		// pathological cancellation and should never occur in
		// practice (spec.md §3); returning the zero vector here
		// rather than dividing by zero keeps callers NaN-free.
		return v
	}
	for i := range v {
		v[i] /= norm
	}
	return v
}
