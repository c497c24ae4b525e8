package domain

// Sampler is the random source used by the generator and by the unifier's
// resample fallback. It is injected explicitly so tests can substitute a
// fixed or mock source, and so a single seeded instance can make an entire
// demo session reproducible.
type Sampler interface {
	// Uniform draws a value uniformly distributed in [min, max).
	Uniform(min, max float64) float64

	// Normal draws a value from a normal distribution with the given mean
	// and standard deviation.
	Normal(mean, stdDev float64) float64
}
