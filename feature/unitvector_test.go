package feature

import "testing"

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestUnitVectorMagnitude(t *testing.T) {
	hashes := []uint64{0, 1, 42, 1 << 40, ^uint64(0)}
	for _, h := range hashes {
		v := UnitVector(8, h)
		if !approxEqual(v.Norm(), 1.0, 1e-6) {
			t.Fatalf("unit vector for hash %v has magnitude %v, want ~1.0", h, v.Norm())
		}
	}
}

func TestUnitVectorDeterministic(t *testing.T) {
	v1 := UnitVector(10, 12345)
	v2 := UnitVector(10, 12345)
	for i := range v1 {
		if !approxEqual(v1[i], v2[i], epsilon) {
			t.Fatalf("UnitVector was not deterministic at index %v: %v vs %v", i, v1[i], v2[i])
		}
	}
}

func TestUnitVectorDiffersAcrossHashes(t *testing.T) {
	v1 := UnitVector(10, 1)
	v2 := UnitVector(10, 2)
	identical := true
	for i := range v1 {
		if !approxEqual(v1[i], v2[i], epsilon) {
			identical = false
			break
		}
	}
	if identical {
		t.Fatalf("expected different hashes to produce different unit vectors")
	}
}
