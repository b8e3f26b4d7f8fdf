package rvec

import "fmt"

func sameShape(a, b Vector) bool {
	return a.shape().name == b.shape().name
}

// Add returns the component-wise sum of a and b as a new vector of the same
// concrete type. It is defined only between vectors of the same
// dimensionality; when V is the Vector interface and the operands' shapes
// differ, it declines with an *ErrShapeMismatch.
func Add[V Vector](a, b V) (V, error) {
	return zipWith(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the component-wise difference a-b as a new vector of the same
// concrete type, declining on shape mismatch like Add.
func Sub[V Vector](a, b V) (V, error) {
	return zipWith(a, b, func(x, y float64) float64 { return x - y })
}

func zipWith[V Vector](a, b V, op func(x, y float64) float64) (V, error) {
	if !sameShape(a, b) {
		var zero V
		return zero, &ErrShapeMismatch{Left: a.shape().name, Right: b.shape().name}
	}
	af, bf := a.Fields(), b.Fields()
	values := make([]float64, len(af))
	for i := range af {
		values[i] = op(af[i].Value, bf[i].Value)
	}
	return a.remake(values).(V), nil
}

// Scale returns v scaled component-wise by k as a new vector of the same
// concrete type. Scalar multiplication commutes, so Scale covers both v*k
// and k*v.
func Scale[V Vector](v V, k float64) V {
	fields := v.Fields()
	values := make([]float64, len(fields))
	for i, f := range fields {
		values[i] = f.Value * k
	}
	return v.remake(values).(V)
}

// Dot returns the dot product of a and b: the sum of pairwise coordinate
// products. It declines with an *ErrShapeMismatch when the shapes differ.
func Dot(a, b Vector) (float64, error) {
	if !sameShape(a, b) {
		return 0, &ErrShapeMismatch{Left: a.shape().name, Right: b.shape().name}
	}
	af, bf := a.Fields(), b.Fields()
	var sum float64
	for i := range af {
		sum += af[i].Value * bf[i].Value
	}
	return sum, nil
}

// Product is the result of the unified multiplication operator Mul: either
// a vector (scalar multiplication) or a scalar (dot product), never both.
type Product struct {
	vector Vector
	scalar float64
}

// Vector returns the scaled vector when the product is vector-valued.
func (p Product) Vector() (Vector, bool) { return p.vector, p.vector != nil }

// Scalar returns the dot product when the product is scalar-valued.
func (p Product) Scalar() (float64, bool) { return p.scalar, p.vector == nil }

// Mul is the unified multiplication operator. A numeric operand scales v, a
// vector operand of the same shape yields the dot product, and any other
// operand declines with an error wrapping ErrTypeMismatch.
func Mul(v Vector, operand any) (Product, error) {
	if k, ok := toFloat(operand); ok {
		return Product{vector: Scale(v, k)}, nil
	}
	if other, ok := operand.(Vector); ok {
		d, err := Dot(v, other)
		if err != nil {
			return Product{}, err
		}
		return Product{scalar: d}, nil
	}
	return Product{}, fmt.Errorf("%w: cannot multiply %s by %T", ErrTypeMismatch, v.shape().name, operand)
}

// Cross returns the cross product of two three-dimensional vectors. The
// cross product exists only in R3, so the operation is defined on the
// concrete type and cannot mismatch.
func (r R3) Cross(other R3) R3 {
	return r.remake([]float64{
		r.Y()*other.Z() - r.Z()*other.Y(),
		r.Z()*other.X() - r.X()*other.Z(),
		r.X()*other.Y() - r.Y()*other.X(),
	}).(R3)
}
