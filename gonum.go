package rvec

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense converts v to a gonum dense column vector so it can be handed to
// gonum/mat routines. The returned vector owns its own backing slice.
func Dense(v Vector) *mat.VecDense {
	fields := v.Fields()
	data := make([]float64, len(fields))
	for i, f := range fields {
		data[i] = f.Value
	}
	return mat.NewVecDense(len(data), data)
}

// FromDense builds a vector of proto's concrete type from the elements of
// d. It declines with an *ErrShapeMismatch when d's length does not match
// proto's dimensionality.
func FromDense(proto Vector, d mat.Vector) (Vector, error) {
	s := proto.shape()
	if d.Len() != len(s.coords) {
		return nil, &ErrShapeMismatch{Left: s.name, Right: fmt.Sprintf("%d-vector", d.Len())}
	}
	values := make([]float64, d.Len())
	for i := range values {
		values[i] = d.AtVec(i)
	}
	return proto.remake(values), nil
}
