package schedule

import mrand "math/rand/v2"

// Rand is the randomness capability injected into the scheduler. Production
// wiring uses the process-wide source; tests inject a seeded or scripted
// substitute to get reproducible sequences.
type Rand interface {
	// IntBetween returns a uniform int in [lo, hi] inclusive.
	IntBetween(lo, hi int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// Sample returns k distinct ints drawn without replacement from [0, n).
	Sample(n, k int) []int
}

// systemRand delegates to the shared math/rand/v2 source.
type systemRand struct{}

// NewRand returns the production randomness source.
func NewRand() Rand { return systemRand{} }

func (systemRand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + mrand.IntN(hi-lo+1)
}

func (systemRand) Float64() float64 { return mrand.Float64() }

func (systemRand) Sample(n, k int) []int {
	return mrand.Perm(n)[:k]
}

// seedRand is a deterministic Rand over a fixed-seed PCG generator.
type seedRand struct {
	r *mrand.Rand
}

// NewSeedRand returns a deterministic Rand seeded with the given value.
// Two instances with the same seed produce identical draw sequences.
func NewSeedRand(seed uint64) Rand {
	return &seedRand{r: mrand.New(mrand.NewPCG(seed, seed))}
}

func (s *seedRand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

func (s *seedRand) Float64() float64 { return s.r.Float64() }

func (s *seedRand) Sample(n, k int) []int {
	return s.r.Perm(n)[:k]
}
