package rvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the class of construction-time failures:
	// a missing, unknown, or non-numeric coordinate.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch is the class of operator declines: arithmetic
	// between incompatible shapes or with a non-vector, non-scalar
	// operand.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ErrMissingCoordinate indicates a by-name construction that omitted a
// declared coordinate.
//
// Wraps ErrInvalidArgument; match the class via errors.Is.
type ErrMissingCoordinate struct {
	Type string
	Name string
}

func (e *ErrMissingCoordinate) Error() string {
	return fmt.Sprintf("%s: missing coordinate %q", e.Type, e.Name)
}

func (e *ErrMissingCoordinate) Unwrap() error { return ErrInvalidArgument }

// ErrUnknownCoordinate indicates a by-name construction that supplied a
// coordinate the type does not declare.
//
// Wraps ErrInvalidArgument; match the class via errors.Is.
type ErrUnknownCoordinate struct {
	Type string
	Name string
}

func (e *ErrUnknownCoordinate) Error() string {
	return fmt.Sprintf("%s: unknown coordinate %q", e.Type, e.Name)
}

func (e *ErrUnknownCoordinate) Unwrap() error { return ErrInvalidArgument }

// ErrNotNumeric indicates a coordinate value of a non-numeric Go kind.
//
// Wraps ErrInvalidArgument; match the class via errors.Is.
type ErrNotNumeric struct {
	Type  string
	Name  string
	Value any
}

func (e *ErrNotNumeric) Error() string {
	return fmt.Sprintf("%s: coordinate %q is not numeric: %T", e.Type, e.Name, e.Value)
}

func (e *ErrNotNumeric) Unwrap() error { return ErrInvalidArgument }

// ErrShapeMismatch indicates a binary operation between vectors of
// different concrete dimensionalities.
//
// Wraps ErrTypeMismatch; match the class via errors.Is.
type ErrShapeMismatch struct {
	Left  string
	Right string
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %s and %s", e.Left, e.Right)
}

func (e *ErrShapeMismatch) Unwrap() error { return ErrTypeMismatch }
