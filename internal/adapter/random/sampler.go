// Package random provides the seeded math/rand implementation of the domain
// Sampler interface.
package random

import (
	"math/rand"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// DefaultSeed is the seed used by the demo application. Fixed so every demo
// session shows the same numbers.
const DefaultSeed = 42

// Sampler draws from a private rand.Rand so two Samplers created with the
// same seed produce bit-identical sequences.
type Sampler struct {
	rng *rand.Rand
}

// assert interface compliance at compile time
var _ domain.Sampler = (*Sampler)(nil)

// New creates a deterministic Sampler seeded with the given value.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Uniform draws a value uniformly distributed in [min, max).
func (s *Sampler) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Normal draws a value from a normal distribution with the given mean and
// standard deviation.
func (s *Sampler) Normal(mean, stdDev float64) float64 {
	return mean + s.rng.NormFloat64()*stdDev
}
