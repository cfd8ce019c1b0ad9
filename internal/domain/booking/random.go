package booking

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields floats in [0,1). Implementations must be safe for
// concurrent use.
type RandomSource interface {
	Float64() float64
}

// GlobalSource draws from the runtime-seeded math/rand/v2 generator.
type GlobalSource struct{}

func (GlobalSource) Float64() float64 { return rand.Float64() }

type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed yield the same sequence.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
