package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vector{}, Vector{}.Normalize())

	n := Vector{X: 3, Y: -4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, -0.8, n.Y, 1e-12)
	assert.InDelta(t, 1, n.Magnitude(), 1e-12)
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{X: 1, Y: 2}
	b := Vector{X: 4, Y: -1}

	assert.Equal(t, Vector{X: 5, Y: 1}, a.Add(b))
	assert.Equal(t, Vector{X: -3, Y: 3}, a.Sub(b))
	assert.Equal(t, Vector{X: 2.5, Y: 5}, a.Scale(2.5))
	assert.Equal(t, 2.0, a.DotProduct(b))
	assert.InDelta(t, math.Pi/2, Vector{Y: 1}.Angle(), 1e-12)
}

func TestVectorPredicates(t *testing.T) {
	assert.True(t, Vector{}.IsZero())
	assert.False(t, Vector{X: 1e-300}.IsZero())
	assert.True(t, Vector{X: 1, Y: -1}.IsFinite())
	assert.False(t, Vector{X: math.NaN()}.IsFinite())
	assert.False(t, Vector{Y: math.Inf(-1)}.IsFinite())
}
