package bottlecap

import (
	"testing"

	"github.com/meghashyamc/flickcap/geometry"
	"github.com/stretchr/testify/assert"
)

func TestKeepInBoundsLeftEdge(t *testing.T) {
	s := State{
		Position: geometry.Vector{X: 10, Y: 300},
		Velocity: geometry.Vector{X: -50, Y: 0},
	}

	n := keepInBounds(&s, geometry.NewRect(0, 0, 400, 600), geometry.Vector{X: 20, Y: 20}, 0.6)

	assert.Equal(t, 1, n)
	assert.Equal(t, geometry.Vector{X: 20, Y: 300}, s.Position)
	assert.InDelta(t, 30, s.Velocity.X, 1e-9)
}

func TestKeepInBoundsEdges(t *testing.T) {
	bounds := geometry.NewRect(0, 0, 100, 50)
	half := geometry.Vector{X: 5, Y: 5}

	tests := []struct {
		name    string
		in      State
		want    State
		bounces int
	}{
		{
			name: "inside",
			in:   State{Position: geometry.Vector{X: 50, Y: 25}, Velocity: geometry.Vector{X: 3, Y: 4}},
			want: State{Position: geometry.Vector{X: 50, Y: 25}, Velocity: geometry.Vector{X: 3, Y: 4}},
		},
		{
			name:    "right",
			in:      State{Position: geometry.Vector{X: 99, Y: 25}, Velocity: geometry.Vector{X: 10, Y: 4}},
			want:    State{Position: geometry.Vector{X: 95, Y: 25}, Velocity: geometry.Vector{X: -5, Y: 4}},
			bounces: 1,
		},
		{
			name:    "bottom right corner",
			in:      State{Position: geometry.Vector{X: 120, Y: 60}, Velocity: geometry.Vector{X: 10, Y: 20}},
			want:    State{Position: geometry.Vector{X: 95, Y: 45}, Velocity: geometry.Vector{X: -5, Y: -10}},
			bounces: 2,
		},
		{
			name:    "top",
			in:      State{Position: geometry.Vector{X: 50, Y: 1}, Velocity: geometry.Vector{X: 0, Y: -8}},
			want:    State{Position: geometry.Vector{X: 50, Y: 5}, Velocity: geometry.Vector{X: 0, Y: 4}},
			bounces: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			assert.Equal(t, tt.bounces, keepInBounds(&s, bounds, half, 0.5))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestKeepInBoundsIsIdempotent(t *testing.T) {
	bounds := geometry.NewRect(0.1, 0.2, 333.3, 77.7)
	half := geometry.Vector{X: 0.3, Y: 12.34}

	for _, p := range []geometry.Vector{{X: -5, Y: -5}, {X: 1000, Y: 1000}, {X: 0.35, Y: 12.5}, {X: 333.2, Y: 65.5}} {
		s := State{Position: p, Velocity: geometry.Vector{X: 3, Y: -7}}
		keepInBounds(&s, bounds, half, 0.6)

		corrected := s
		assert.Zero(t, keepInBounds(&s, bounds, half, 0.6))
		assert.Equal(t, corrected, s)
	}
}

func TestKeepInBoundsCentresOversizedCap(t *testing.T) {
	s := State{Position: geometry.Vector{X: 70, Y: 10}, Velocity: geometry.Vector{X: 9, Y: 9}}

	keepInBounds(&s, geometry.NewRect(0, 0, 20, 100), geometry.Vector{X: 15, Y: 5}, 0.6)

	assert.Equal(t, geometry.Vector{X: 10, Y: 10}, s.Position)
	assert.Equal(t, geometry.Vector{X: 0, Y: 9}, s.Velocity)

	corrected := s
	keepInBounds(&s, geometry.NewRect(0, 0, 20, 100), geometry.Vector{X: 15, Y: 5}, 0.6)
	assert.Equal(t, corrected, s)
}
