package service

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies uniformly distributed values in [0,1). Scoring draws
// every random value it needs from a RandomSource so results are reproducible
// under a fixed seed.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic PCG-backed source.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedSource serialises access to a RandomSource shared between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

// NewLockedSource wraps src for concurrent use.
func NewLockedSource(src RandomSource) *LockedSource {
	return &LockedSource{src: src}
}

// Float64 implements RandomSource.
func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

func uniform(rnd RandomSource, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}
