package vrp

import "testing"

func TestRngFromSeed_Deterministic(t *testing.T) {
	a := rngFromSeed(42)
	b := rngFromSeed(42)
	for i := 0; i < 10; i++ {
		va, vb := a.Int63(), b.Int63()
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestRngFromSeed_ZeroUsesDefaultSeed(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	if a.Int63() != b.Int63() {
		t.Fatal("seed 0 did not fall back to defaultRNGSeed")
	}
}

func TestDeriveSeed_DifferentStreamsDiverge(t *testing.T) {
	s1 := deriveSeed(7, 0)
	s2 := deriveSeed(7, 1)
	if s1 == s2 {
		t.Fatal("distinct stream ids produced the same derived seed")
	}
}

func TestDeriveRNG_NilBaseIsDeterministic(t *testing.T) {
	a := deriveRNG(nil, 3)
	b := deriveRNG(nil, 3)
	if a.Int63() != b.Int63() {
		t.Fatal("deriveRNG(nil, stream) was not reproducible")
	}
}

func TestDeriveRNG_SameBaseSeedSameStream(t *testing.T) {
	base1 := rngFromSeed(99)
	base2 := rngFromSeed(99)
	r1 := deriveRNG(base1, 5)
	r2 := deriveRNG(base2, 5)
	if r1.Int63() != r2.Int63() {
		t.Fatal("identical base streams and stream id produced different derived RNGs")
	}
}

func TestWeightedChoice_AllZeroWeightsPicksFirst(t *testing.T) {
	rng := rngFromSeed(1)
	idx := weightedChoice(rng, []float64{0, 0, 0})
	if idx != 0 {
		t.Fatalf("expected index 0 for all-zero weights, got %d", idx)
	}
}

func TestWeightedChoice_SingleDominantWeight(t *testing.T) {
	rng := rngFromSeed(1)
	weights := []float64{0, 1000, 0}
	for i := 0; i < 20; i++ {
		if idx := weightedChoice(rng, weights); idx != 1 {
			t.Fatalf("expected the dominant weight's index 1, got %d", idx)
		}
	}
}

func TestWeightedChoice_NegativeWeightsIgnored(t *testing.T) {
	rng := rngFromSeed(1)
	weights := []float64{-5, 3}
	for i := 0; i < 20; i++ {
		if idx := weightedChoice(rng, weights); idx != 1 {
			t.Fatalf("expected negative-weight index to never be chosen, got %d", idx)
		}
	}
}
