package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvec-go/rvec"
)

func TestFloats(t *testing.T) {
	rng := NewRNG(4711)

	values := rng.Floats(32)

	assert.Equal(t, 32, len(values))
	for _, v := range values {
		assert.Less(t, v, 1.0)
		assert.GreaterOrEqual(t, v, -1.0)
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := NewRNG(4711).R3()
	b := NewRNG(4711).R3()

	assert.True(t, rvec.Equal(a, b))
}

func TestVectors(t *testing.T) {
	vectors := NewRNG(42).Vectors()

	assert.Equal(t, 5, len(vectors))
	for i, v := range vectors {
		assert.Equal(t, i+2, len(v.Fields()))
	}
}
