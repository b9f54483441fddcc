package engine

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 20; i++ {
		a := rng1.Intn(6)
		b := rng2.Intn(6)
		if a != b {
			t.Fatalf("draw %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_Intn_Range(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		r := rng.Intn(6)
		if r < 0 || r > 5 {
			t.Fatalf("draw out of range [0,6): got %d", r)
		}
	}
}

func TestRNG_Intn_One(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 10; i++ {
		if r := rng.Intn(1); r != 0 {
			t.Fatalf("Intn(1) should always be 0, got %d", r)
		}
	}
}

func TestRNG_Float64_Range(t *testing.T) {
	rng := NewRNG(7)

	for i := 0; i < 1000; i++ {
		f := rng.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("draw out of range [0,1): got %f", f)
		}
	}
}

func TestRNG_Float64_Distribution(t *testing.T) {
	rng := NewRNG(12345)

	// The flee threshold: roughly 70% of draws fall below it.
	below := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if rng.Float64() < fleeChance {
			below++
		}
	}
	if below < 6500 || below > 7500 {
		t.Errorf("expected ~7000 draws below %.1f, got %d", fleeChance, below)
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	rng := NewRNG(42)

	if rng.Position() != 0 {
		t.Fatalf("expected position 0, got %d", rng.Position())
	}

	rng.Intn(6)
	if rng.Position() != 1 {
		t.Fatalf("expected position 1, got %d", rng.Position())
	}

	rng.Float64()
	rng.Float64()
	if rng.Position() != 3 {
		t.Fatalf("expected position 3, got %d", rng.Position())
	}
	if rng.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", rng.Seed())
	}
}

func TestRNG_DifferentSeeds_DifferentResults(t *testing.T) {
	rng1 := NewRNG(1)
	rng2 := NewRNG(2)

	// With different seeds, at least some draws should differ.
	differs := false
	for i := 0; i < 20; i++ {
		if rng1.Intn(100) != rng2.Intn(100) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different results")
	}
}
