// Package rvec provides a small family of real-vector value types covering
// the two- through six-dimensional real coordinate spaces.
//
// The family is closed: exactly five concrete types, R2 through R6, each
// with a fixed, named coordinate set (x, y, z, w, v, u in declaration
// order). Every type implements the Vector capability, an ordered view of
// its coordinates, and all shared behavior (norm, rendering, arithmetic,
// introspection) is written once against that capability rather than per
// dimension.
//
// # Quick Start
//
//	a, _ := rvec.NewR2(rvec.Coords{"x": 2, "y": 3})
//	b, _ := rvec.NewR2(rvec.Coords{"x": 0.5, "y": 1.25})
//
//	a.Norm()          // √13
//	rvec.Add(a, b)    // R2(x=2.5, y=4.25)
//	rvec.Dot(a, b)    // 4.75
//	rvec.Scale(a, 3)  // R2(x=6, y=9)
//
// Coordinates are always supplied by name. Constructors reject missing,
// unknown, and non-numeric coordinates with errors wrapping
// ErrInvalidArgument.
//
// # Arithmetic Contract
//
// Binary operations are defined only between vectors of the same concrete
// dimensionality. When the shapes differ, the operation declines with an
// error wrapping ErrTypeMismatch instead of producing a result:
//
//	r3, _ := rvec.NewR3(rvec.Coords{"x": 1, "y": 2, "z": 3})
//	_, err := rvec.Add[rvec.Vector](a, r3) // *ErrShapeMismatch
//
// Mul is the unified multiplication operator: a scalar operand scales the
// vector, a same-shape vector operand yields the dot product, and anything
// else declines.
//
// # Storage Strategies
//
// R2, R3 and R4 keep their coordinates in an ordered field list built at
// construction time. R5 and R6 declare their complete coordinate set up
// front as plain struct fields, trading the list's flexibility for a fixed
// footprint. The difference is invisible through Fields: the shared
// algorithms and the Attributes helper work identically over both.
package rvec
