package rvec

import "slices"

// Vector is the capability shared by every member of the R2..R6 family: an
// ordered view of the coordinates plus enough plumbing for the package's
// generic algorithms to rebuild a value of the same concrete type. The
// family is closed; no types outside this package implement it.
type Vector interface {
	// Fields returns the vector's coordinates in declaration order.
	Fields() []Field

	shape() shape
	remake(values []float64) Vector
}

// dict is the dynamic storage strategy: an ordered field list built at
// construction time, the moral equivalent of a per-instance attribute map.
// The zero value reads as the all-zero vector of whatever contract it is
// paired with.
type dict struct {
	fields []Field
}

func newDict(s shape, values []float64) dict {
	return dict{fields: s.zip(values)}
}

func (d dict) list(s shape) []Field {
	if d.fields == nil {
		return s.zip(make([]float64, len(s.coords)))
	}
	return slices.Clone(d.fields)
}

func (d dict) get(name string) float64 {
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return 0
}

// R2 is a vector in the two-dimensional real coordinate space. It uses
// dynamic storage: its coordinates live in an ordered field list rather
// than in struct fields.
type R2 struct {
	dict dict
}

// NewR2 constructs an R2 from coordinates supplied by name: "x" and "y".
func NewR2(c Coords) (R2, error) {
	values, err := shapeR2.resolve(c)
	if err != nil {
		return R2{}, err
	}
	return R2{dict: newDict(shapeR2, values)}, nil
}

func (r R2) X() float64 { return r.dict.get("x") }
func (r R2) Y() float64 { return r.dict.get("y") }

// Fields returns the coordinates in declaration order.
func (r R2) Fields() []Field { return r.dict.list(shapeR2) }

// Norm returns the Euclidean norm.
func (r R2) Norm() float64 { return Norm(r) }

// String returns the human-readable form, e.g. "(x=2, y=3)".
func (r R2) String() string { return formatHuman(r) }

// GoString returns the constructor-style form, e.g. "R2(x=2, y=3)".
func (r R2) GoString() string { return formatCtor(r) }

func (r R2) shape() shape { return shapeR2 }

func (r R2) remake(values []float64) Vector {
	return R2{dict: newDict(shapeR2, values)}
}

// R3 is a vector in the three-dimensional real coordinate space. Its
// coordinate contract extends R2's with "z"; like R2 it uses dynamic
// storage.
type R3 struct {
	dict dict
}

// NewR3 constructs an R3 from coordinates supplied by name: "x", "y", "z".
func NewR3(c Coords) (R3, error) {
	values, err := shapeR3.resolve(c)
	if err != nil {
		return R3{}, err
	}
	return R3{dict: newDict(shapeR3, values)}, nil
}

func (r R3) X() float64 { return r.dict.get("x") }
func (r R3) Y() float64 { return r.dict.get("y") }
func (r R3) Z() float64 { return r.dict.get("z") }

// Fields returns the coordinates in declaration order.
func (r R3) Fields() []Field { return r.dict.list(shapeR3) }

// Norm returns the Euclidean norm.
func (r R3) Norm() float64 { return Norm(r) }

// String returns the human-readable form.
func (r R3) String() string { return formatHuman(r) }

// GoString returns the constructor-style form.
func (r R3) GoString() string { return formatCtor(r) }

func (r R3) shape() shape { return shapeR3 }

func (r R3) remake(values []float64) Vector {
	return R3{dict: newDict(shapeR3, values)}
}

// R4 is a vector in the four-dimensional real coordinate space. Its
// coordinate contract extends R3's with "w"; like R2 it uses dynamic
// storage.
type R4 struct {
	dict dict
}

// NewR4 constructs an R4 from coordinates supplied by name: "x", "y", "z",
// "w".
func NewR4(c Coords) (R4, error) {
	values, err := shapeR4.resolve(c)
	if err != nil {
		return R4{}, err
	}
	return R4{dict: newDict(shapeR4, values)}, nil
}

func (r R4) X() float64 { return r.dict.get("x") }
func (r R4) Y() float64 { return r.dict.get("y") }
func (r R4) Z() float64 { return r.dict.get("z") }
func (r R4) W() float64 { return r.dict.get("w") }

// Fields returns the coordinates in declaration order.
func (r R4) Fields() []Field { return r.dict.list(shapeR4) }

// Norm returns the Euclidean norm.
func (r R4) Norm() float64 { return Norm(r) }

// String returns the human-readable form.
func (r R4) String() string { return formatHuman(r) }

// GoString returns the constructor-style form.
func (r R4) GoString() string { return formatCtor(r) }

func (r R4) shape() shape { return shapeR4 }

func (r R4) remake(values []float64) Vector {
	return R4{dict: newDict(shapeR4, values)}
}

// R5 is a vector in the five-dimensional real coordinate space. Its
// coordinate contract extends R4's with "v".
//
// R5 uses fixed storage: the complete coordinate set is declared up front
// as struct fields, one word each. Nothing can be attached to an instance
// beyond these five values, trading the field list's flexibility for a
// fixed footprint. The difference from the dynamic types is invisible
// through Fields.
type R5 struct {
	x, y, z, w, v float64
}

// NewR5 constructs an R5 from coordinates supplied by name: "x", "y", "z",
// "w", "v".
func NewR5(c Coords) (R5, error) {
	values, err := shapeR5.resolve(c)
	if err != nil {
		return R5{}, err
	}
	return r5FromValues(values), nil
}

func r5FromValues(values []float64) R5 {
	return R5{x: values[0], y: values[1], z: values[2], w: values[3], v: values[4]}
}

func (r R5) X() float64 { return r.x }
func (r R5) Y() float64 { return r.y }
func (r R5) Z() float64 { return r.z }
func (r R5) W() float64 { return r.w }
func (r R5) V() float64 { return r.v }

// Fields returns the coordinates in declaration order.
func (r R5) Fields() []Field {
	return shapeR5.zip([]float64{r.x, r.y, r.z, r.w, r.v})
}

// Norm returns the Euclidean norm.
func (r R5) Norm() float64 { return Norm(r) }

// String returns the human-readable form.
func (r R5) String() string { return formatHuman(r) }

// GoString returns the constructor-style form.
func (r R5) GoString() string { return formatCtor(r) }

func (r R5) shape() shape { return shapeR5 }

func (r R5) remake(values []float64) Vector { return r5FromValues(values) }

// R6 is a vector in the six-dimensional real coordinate space. Its
// coordinate contract extends R5's with "u". Like R5 it uses fixed storage.
type R6 struct {
	x, y, z, w, v, u float64
}

// NewR6 constructs an R6 from coordinates supplied by name: "x", "y", "z",
// "w", "v", "u".
func NewR6(c Coords) (R6, error) {
	values, err := shapeR6.resolve(c)
	if err != nil {
		return R6{}, err
	}
	return r6FromValues(values), nil
}

func r6FromValues(values []float64) R6 {
	return R6{x: values[0], y: values[1], z: values[2], w: values[3], v: values[4], u: values[5]}
}

func (r R6) X() float64 { return r.x }
func (r R6) Y() float64 { return r.y }
func (r R6) Z() float64 { return r.z }
func (r R6) W() float64 { return r.w }
func (r R6) V() float64 { return r.v }
func (r R6) U() float64 { return r.u }

// Fields returns the coordinates in declaration order.
func (r R6) Fields() []Field {
	return shapeR6.zip([]float64{r.x, r.y, r.z, r.w, r.v, r.u})
}

// Norm returns the Euclidean norm.
func (r R6) Norm() float64 { return Norm(r) }

// String returns the human-readable form.
func (r R6) String() string { return formatHuman(r) }

// GoString returns the constructor-style form.
func (r R6) GoString() string { return formatCtor(r) }

func (r R6) shape() shape { return shapeR6 }

func (r R6) remake(values []float64) Vector { return r6FromValues(values) }
