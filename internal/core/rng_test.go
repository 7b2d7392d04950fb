package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := make([]bool, 64)
	b := make([]bool, 64)
	NewRNG(42).FillDensity(a, 0.5)
	NewRNG(42).FillDensity(b, 0.5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded fills differ at %d", i)
		}
	}
	NewRNG(42).FillDensity(a, 0)
	for i, v := range a {
		if v {
			t.Fatalf("zero density produced a live cell at %d", i)
		}
	}
}
