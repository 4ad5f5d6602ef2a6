package sampler

import (
	"math/rand/v2"
	"sync"
)

// Range is a closed integer interval.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

var (
	TemperatureRange   = Range{Min: -5, Max: 40}
	WindSpeedRange     = Range{Min: 1, Max: 64}
	WindDirectionRange = Range{Min: 0, Max: 360}
)

// Sampler draws synthetic measurements. It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Sampler backed by the process-wide generator.
func New() *Sampler {
	return &Sampler{}
}

// NewSeeded returns a Sampler whose sequence is reproducible for a given seed.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Sampler) Temperature() int {
	return s.draw(TemperatureRange)
}

func (s *Sampler) WindSpeed() int {
	return s.draw(WindSpeedRange)
}

func (s *Sampler) WindDirection() int {
	return s.draw(WindDirectionRange)
}

func (s *Sampler) draw(r Range) int {
	n := r.Max - r.Min + 1
	if s.rng == nil {
		return r.Min + rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.Min + s.rng.IntN(n)
}
