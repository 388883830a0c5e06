package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 50.0, r.Height())
	assert.Equal(t, Vector{X: 60, Y: 45}, r.Center())
	assert.False(t, r.Empty())
	assert.True(t, NewRect(0, 0, 0, 10).Empty())

	assert.True(t, r.Contains(Vector{X: 10, Y: 20}))
	assert.True(t, r.Contains(Vector{X: 110, Y: 70}))
	assert.False(t, r.Contains(Vector{X: 111, Y: 30}))

	assert.True(t, r.ContainsRect(NewRect(20, 30, 10, 10)))
	assert.False(t, r.ContainsRect(NewRect(100, 30, 20, 10)))
	assert.True(t, r.Intersects(NewRect(100, 30, 20, 10)))
	assert.False(t, r.Intersects(NewRect(110, 30, 20, 10)))
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vector{X: 5, Y: 5}, Vector{X: 2, Y: 3})
	assert.Equal(t, NewRect(3, 2, 4, 6), r)
}
