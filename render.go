package rvec

import (
	"fmt"
	"strings"
)

// formatHuman renders the display form: every coordinate with its value in
// declaration order, e.g. "(x=2, y=3)".
func formatHuman(v Vector) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, f := range v.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", f.Name, f.Value)
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatCtor renders the constructor-style form that reproduces the
// instance, e.g. "R3(x=2, y=3, z=1)". Values render with %#v so anything
// carrying its own GoString embeds in constructor form as well.
func formatCtor(v Vector) string {
	var sb strings.Builder
	sb.WriteString(v.shape().name)
	sb.WriteByte('(')
	for i, f := range v.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%#v", f.Name, f.Value)
	}
	sb.WriteByte(')')
	return sb.String()
}
