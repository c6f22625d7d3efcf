package utils

import (
	"math/rand"
)

// Source is the single random stream consumed by the simulation:
// generation, damage rolls, crit rolls and AI jitter all draw from it.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a seeded production source.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange returns a uniform integer in [lo, hi] (both inclusive).
func RandRange(rng Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Chance reports whether a roll succeeds with probability p.
func Chance(rng Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}

// Sample picks k elements without replacement, preserving pick order.
// The input slice is not modified. If k >= len(items) every element
// is returned in shuffled order.
func Sample[T any](rng Source, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}
	if k < 0 {
		k = 0
	}
	// Partial Fisher-Yates.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Pick returns one uniformly chosen element. Panics on an empty slice.
func Pick[T any](rng Source, items []T) T {
	return items[rng.Intn(len(items))]
}
