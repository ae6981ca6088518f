package generation

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	rng := NewRNG(99)
	for i := 0; i < 1000; i++ {
		if v := rng.IntRange(2, 4); v < 2 || v > 4 {
			t.Fatalf("IntRange(2, 4) returned %d", v)
		}
		if f := rng.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 returned %v", f)
		}
		if s := rng.Sign(); s != 1 && s != -1 {
			t.Fatalf("Sign returned %v", s)
		}
	}
	if v := rng.IntRange(5, 5); v != 5 {
		t.Errorf("degenerate range should return its bound, got %d", v)
	}
	if v := rng.Intn(0); v != 0 {
		t.Errorf("Intn(0) should be 0, got %d", v)
	}
}

func TestRNGWeighted(t *testing.T) {
	rng := NewRNG(7)

	if idx := rng.Weighted([]float64{0, 0, 0}); idx != -1 {
		t.Fatalf("all-zero weights should return -1, got %d", idx)
	}
	for i := 0; i < 200; i++ {
		if idx := rng.Weighted([]float64{0, -3, 2, 0}); idx != 2 {
			t.Fatalf("only index 2 has weight, got %d", idx)
		}
	}

	counts := make([]int, 2)
	for i := 0; i < 4000; i++ {
		counts[rng.Weighted([]float64{1, 3})]++
	}
	if counts[1] < counts[0]*2 {
		t.Errorf("weight 3 should dominate weight 1, got %v", counts)
	}
}
