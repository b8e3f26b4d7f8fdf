// Package util provides seeded random coordinate generation for tests,
// benchmarks, and demos.
package util

import (
	"math/rand"

	"github.com/rvec-go/rvec"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Float returns one uniform coordinate value in [-1, 1).
func (r *RNG) Float() float64 {
	return 2*r.rand.Float64() - 1
}

// Floats returns n uniform coordinate values in [-1, 1).
func (r *RNG) Floats(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = r.Float()
	}
	return values
}

// R2 returns a random two-dimensional vector.
func (r *RNG) R2() rvec.R2 {
	v, _ := rvec.NewR2(rvec.Coords{"x": r.Float(), "y": r.Float()})
	return v
}

// R3 returns a random three-dimensional vector.
func (r *RNG) R3() rvec.R3 {
	v, _ := rvec.NewR3(rvec.Coords{"x": r.Float(), "y": r.Float(), "z": r.Float()})
	return v
}

// R4 returns a random four-dimensional vector.
func (r *RNG) R4() rvec.R4 {
	v, _ := rvec.NewR4(rvec.Coords{"x": r.Float(), "y": r.Float(), "z": r.Float(), "w": r.Float()})
	return v
}

// R5 returns a random five-dimensional vector.
func (r *RNG) R5() rvec.R5 {
	v, _ := rvec.NewR5(rvec.Coords{"x": r.Float(), "y": r.Float(), "z": r.Float(), "w": r.Float(), "v": r.Float()})
	return v
}

// R6 returns a random six-dimensional vector.
func (r *RNG) R6() rvec.R6 {
	v, _ := rvec.NewR6(rvec.Coords{"x": r.Float(), "y": r.Float(), "z": r.Float(), "w": r.Float(), "v": r.Float(), "u": r.Float()})
	return v
}

// Vectors returns one random vector per dimensionality, 2 through 6.
func (r *RNG) Vectors() []rvec.Vector {
	return []rvec.Vector{r.R2(), r.R3(), r.R4(), r.R5(), r.R6()}
}
