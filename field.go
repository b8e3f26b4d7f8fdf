package rvec

import "slices"

// Field is a single named coordinate of a vector.
type Field struct {
	Name  string
	Value float64
}

// Coords carries constructor arguments by coordinate name. Values may be of
// any Go integer or float kind; anything else is rejected at construction.
type Coords map[string]any

// shape is the coordinate contract of one concrete dimensionality: the type
// name and the declared coordinate names in order. Each dimension's shape is
// derived from the previous one by extending it with exactly one name.
type shape struct {
	name   string
	coords []string
}

func (s shape) extend(name, coord string) shape {
	coords := make([]string, 0, len(s.coords)+1)
	coords = append(coords, s.coords...)
	coords = append(coords, coord)
	return shape{name: name, coords: coords}
}

var (
	shapeR2 = shape{name: "R2", coords: []string{"x", "y"}}
	shapeR3 = shapeR2.extend("R3", "z")
	shapeR4 = shapeR3.extend("R4", "w")
	shapeR5 = shapeR4.extend("R5", "v")
	shapeR6 = shapeR5.extend("R6", "u")
)

// resolve validates c against the contract and returns the coordinate values
// in declaration order.
func (s shape) resolve(c Coords) ([]float64, error) {
	for name := range c {
		if !slices.Contains(s.coords, name) {
			return nil, &ErrUnknownCoordinate{Type: s.name, Name: name}
		}
	}

	values := make([]float64, len(s.coords))
	for i, name := range s.coords {
		raw, ok := c[name]
		if !ok {
			return nil, &ErrMissingCoordinate{Type: s.name, Name: name}
		}
		f, ok := toFloat(raw)
		if !ok {
			return nil, &ErrNotNumeric{Type: s.name, Name: name, Value: raw}
		}
		values[i] = f
	}

	return values, nil
}

// zip pairs the contract's names with values given in declaration order.
func (s shape) zip(values []float64) []Field {
	fields := make([]Field, len(s.coords))
	for i, name := range s.coords {
		fields[i] = Field{Name: name, Value: values[i]}
	}
	return fields
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
