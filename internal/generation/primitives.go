package generation

import "math"

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func round(v float64) int {
	return int(math.Round(v))
}

// ---- Seeded RNG ----

// RNG is a simple seeded random number generator (LCG)
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n)
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.Uint64() >> 33) % uint64(n))
}

// IntRange returns a pseudo-random int in [min, max]
func (r *RNG) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Chance returns true with probability p
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Sign returns +1 or -1 with equal probability
func (r *RNG) Sign() float64 {
	if r.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Weighted picks an index with probability proportional to its weight.
// Negative weights count as zero. Returns -1 when every weight is zero.
func (r *RNG) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := r.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
		last = i
	}
	// Float drift can leave a sliver past the final bucket.
	return last
}
