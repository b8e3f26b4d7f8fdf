package rvec

// Attributes returns a mapping from coordinate name to current value for
// any member of the family. It reads through Fields, so it works uniformly
// whether the concrete type stores its coordinates in a dynamic field list
// or in fixed struct fields.
func Attributes(v Vector) map[string]float64 {
	fields := v.Fields()
	attrs := make(map[string]float64, len(fields))
	for _, f := range fields {
		attrs[f.Name] = f.Value
	}
	return attrs
}
