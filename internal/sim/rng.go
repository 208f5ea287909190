package sim

import (
	"math"
	"math/rand/v2"
)

// Rand is the single source of randomness for a simulation run. Every model
// draws through it, so two runs built with the same seed replay identically.
type Rand struct {
	src *rand.Rand
}

// NewRand builds a seeded generator. The same seed always yields the same
// draw sequence.
func NewRand(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a draw in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// IntN returns a draw in [0, n).
func (r *Rand) IntN(n int) int {
	return r.src.IntN(n)
}

// Normal returns a Gaussian draw with the given mean and standard deviation.
func (r *Rand) Normal(mean, stddev float64) float64 {
	return mean + stddev*r.src.NormFloat64()
}

// Uniform returns a draw in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.src.Float64()
}

// Poisson returns a Poisson-distributed draw with rate lambda.
// Knuth's multiplication method; lambda stays small here (< 5).
func (r *Rand) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= r.src.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
