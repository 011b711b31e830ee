package testutil

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator for deterministic
// tests. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rand.Seed(r.seed)
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rand.Uint64()
}

// Uint64s returns n uniformly distributed 64-bit values, suitable as a
// random point set.
func (r *RNG) Uint64s(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]uint64, n)
	for i := range values {
		values[i] = r.rand.Uint64()
	}

	return values
}

// Intn returns a uniformly distributed value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rand.Intn(n)
}

// Choose returns k elements of set picked at random without replacement.
// It panics if k exceeds len(set).
func (r *RNG) Choose(set []uint64, k int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	chosen := make([]uint64, k)
	for i, idx := range r.rand.Perm(len(set))[:k] {
		chosen[i] = set[idx]
	}

	return chosen
}
