package rvec_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvec-go/rvec"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		coords   rvec.Coords
		expected string
	}{
		{"R2", 2, rvec.Coords{"x": 2, "y": 3}, "(x=2, y=3)"},
		{"R2Fraction", 2, rvec.Coords{"x": 0.5, "y": 1.25}, "(x=0.5, y=1.25)"},
		{"R3", 3, rvec.Coords{"x": 2, "y": 3, "z": 1}, "(x=2, y=3, z=1)"},
		{"R6", 6, rvec.Coords{"x": 1, "y": 2, "z": 3, "w": 4, "v": 5, "u": 6}, "(x=1, y=2, z=3, w=4, v=5, u=6)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := construct(tt.n, tt.coords)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fmt.Sprintf("%v", v))
		})
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		coords   rvec.Coords
		expected string
	}{
		{"R2", 2, rvec.Coords{"x": 2, "y": 3}, "R2(x=2, y=3)"},
		{"R5", 5, rvec.Coords{"x": 1, "y": 2, "z": 3, "w": 4, "v": 5}, "R5(x=1, y=2, z=3, w=4, v=5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := construct(tt.n, tt.coords)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fmt.Sprintf("%#v", v))
		})
	}
}

func TestRenderingsListEveryField(t *testing.T) {
	// The two forms differ in exact text, but both enumerate every
	// coordinate, for both storage strategies.
	for n := 2; n <= 6; n++ {
		v, err := construct(n, fullCoords(n))
		require.NoError(t, err)

		human := fmt.Sprintf("%v", v)
		ctor := fmt.Sprintf("%#v", v)
		assert.NotEqual(t, human, ctor)

		for _, f := range v.Fields() {
			assert.True(t, strings.Contains(human, f.Name+"="), "human form lists %q", f.Name)
			assert.True(t, strings.Contains(ctor, f.Name+"="), "constructor form lists %q", f.Name)
		}
	}
}
