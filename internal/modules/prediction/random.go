package prediction

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it but is not safe for concurrent use; see NewLockedSource.
type RandomSource interface {
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource returns a goroutine-safe source seeded with seed.
// A zero seed seeds from the current time.
func NewLockedSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
