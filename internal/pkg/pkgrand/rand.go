package pkgrand

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source returns pseudo-random integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Locked is a PCG-backed Source safe for concurrent use.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Locked source. A zero seed picks one from the wall clock.
func New(seed uint64) *Locked {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Locked{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.IntN(n)
}

// Pick returns a random element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
