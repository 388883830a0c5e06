package game

import (
	"testing"

	"github.com/meghashyamc/flickcap/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNotReadyBeforeLayout(t *testing.T) {
	_, ok := NewTable(1200, 800).Frame()
	assert.False(t, ok)
}

func TestTableLetterboxes(t *testing.T) {
	table := NewTable(1200, 800)

	assert.True(t, table.Resize(1200, 800))
	assert.False(t, table.Resize(1200, 800))
	f, ok := table.Frame()
	require.True(t, ok)
	assert.Equal(t, geometry.NewRect(0, 0, 1200, 800), f.Rect)
	assert.Equal(t, 1.0, f.Scale)

	// Wider window: height limits the scale and the table is centred.
	table.Resize(1000, 400)
	f, ok = table.Frame()
	require.True(t, ok)
	assert.Equal(t, 0.5, f.Scale)
	assert.Equal(t, geometry.NewRect(200, 0, 600, 400), f.Rect)
	assert.Equal(t, geometry.Vector{X: 500, Y: 200}, f.ToWorld(geometry.Vector{}))
}
