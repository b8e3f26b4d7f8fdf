package rvec

import (
	"cmp"
	"math"
)

// Norm returns the Euclidean norm of v: the square root of the sum of
// squares of its coordinates. It is written once over Fields and serves
// every dimensionality; the result is 0 exactly when every coordinate is 0.
func Norm(v Vector) float64 {
	var sum float64
	for _, f := range v.Fields() {
		sum += f.Value * f.Value
	}
	return math.Sqrt(sum)
}

// Unit returns a copy of v scaled to norm 1. Returns false when v is the
// zero vector, which has no direction.
func Unit[V Vector](v V) (V, bool) {
	n := Norm(v)
	if n == 0 {
		var zero V
		return zero, false
	}
	return Scale(v, 1/n), true
}

// Equal reports whether a and b have the same shape and identical
// coordinates. Vectors of different dimensionalities are never equal.
func Equal(a, b Vector) bool {
	if !sameShape(a, b) {
		return false
	}
	af, bf := a.Fields(), b.Fields()
	for i := range af {
		if af[i].Value != bf[i].Value {
			return false
		}
	}
	return true
}

// Compare orders a and b by Euclidean norm, returning -1, 0, or +1. It
// declines with an *ErrShapeMismatch when the shapes differ.
func Compare(a, b Vector) (int, error) {
	if !sameShape(a, b) {
		return 0, &ErrShapeMismatch{Left: a.shape().name, Right: b.shape().name}
	}
	return cmp.Compare(Norm(a), Norm(b)), nil
}
