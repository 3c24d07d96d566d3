package pqgram

import "github.com/cespare/xxhash/v2"

// Hash returns the hash of the concatenation stem++base, as required by
// spec.md §3 ("the hash of a Gram is defined as the hash of the
// concatenation stem ++ base"). Two structurally different grams may
// collide; spec.md §7 tolerates this silently, since it only perturbs a
// feature vector.
//
// L is only required to be comparable, so there is no generic way to turn
// an arbitrary label into bytes; we hash its canonical %v formatting via
// xxhash, which is stable for any value built from basic types, strings,
// and plain structs (the only label shapes realistic callers use).
func Hash[L Label](g Gram[L]) uint64 {
	return xxhash.Sum64String(g.Key())
}
