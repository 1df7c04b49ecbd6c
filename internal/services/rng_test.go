package services_test

import (
	"testing"

	"betblitz-backend/internal/services"
)

func TestUniformRange(t *testing.T) {
	rng := services.NewRNG()

	for i := 0; i < 10000; i++ {
		v := rng.Uniform()
		if v < 0 || v >= 1 {
			t.Fatalf("Uniform() out of [0,1): %v", v)
		}
	}
}

func TestUniformIntRange(t *testing.T) {
	rng := services.NewRNG()

	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := rng.UniformInt(25)
		if v < 0 || v >= 25 {
			t.Fatalf("UniformInt(25) out of range: %d", v)
		}
		seen[v] = true
	}

	// 10k draws over 25 buckets should hit every tile.
	if len(seen) != 25 {
		t.Errorf("expected all 25 values, saw %d", len(seen))
	}

	// n=1 is degenerate but legal.
	if v := rng.UniformInt(1); v != 0 {
		t.Errorf("UniformInt(1) = %d, want 0", v)
	}
}
