package game

import (
	"testing"

	"github.com/meghashyamc/flickcap/bottlecap"
	"github.com/meghashyamc/flickcap/geometry"
	"github.com/meghashyamc/flickcap/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntity(t *testing.T, table *Table, spawn geometry.Vector) *capEntity {
	t.Helper()
	c, err := bottlecap.New(t.Name(), bottlecap.DefaultConfig(), table, logger.NewWithLevel("error"))
	require.NoError(t, err)
	c.SetSize(geometry.Vector{X: 40, Y: 40})
	return newCapEntity(c, spawn)
}

func newTestTable(width, height int) *Table {
	table := NewTable(width, height)
	table.Resize(width, height)
	return table
}

func TestPickerTopmostWins(t *testing.T) {
	table := newTestTable(400, 400)
	a := newTestEntity(t, table, geometry.Vector{})
	b := newTestEntity(t, table, geometry.Vector{X: 10})

	p := newPicker(400, 400)
	p.Add(a)
	p.Add(b)
	p.Sync()

	assert.Same(t, b, p.Pick(geometry.Vector{X: 205, Y: 200}))
	assert.Same(t, a, p.Pick(geometry.Vector{X: 185, Y: 200}))
	assert.Nil(t, p.Pick(geometry.Vector{X: 10, Y: 10}))

	p.Raise(a)
	assert.Same(t, a, p.Pick(geometry.Vector{X: 205, Y: 200}))
	assert.Greater(t, p.Layer(a), p.Layer(b))
}

func TestPickerFollowsMovement(t *testing.T) {
	table := newTestTable(400, 400)
	a := newTestEntity(t, table, geometry.Vector{})

	p := newPicker(400, 400)
	p.Add(a)
	p.Sync()

	a.cap.SetPosition(geometry.Vector{X: -150, Y: 150})
	p.Sync()

	assert.Nil(t, p.Pick(geometry.Vector{X: 200, Y: 200}))
	assert.Same(t, a, p.Pick(geometry.Vector{X: 50, Y: 350}))
}

func TestPickerSkipsInactiveCaps(t *testing.T) {
	table := newTestTable(400, 400)
	a := newTestEntity(t, table, geometry.Vector{})
	b := newTestEntity(t, table, geometry.Vector{})

	p := newPicker(400, 400)
	p.Add(a)
	p.Add(b)
	p.Sync()

	b.cap.Destroy()
	assert.Same(t, a, p.Pick(geometry.Vector{X: 200, Y: 200}))

	p.Remove(a)
	assert.Nil(t, p.Pick(geometry.Vector{X: 200, Y: 200}))
}

func TestPickerResize(t *testing.T) {
	table := newTestTable(400, 400)
	a := newTestEntity(t, table, geometry.Vector{})

	p := newPicker(400, 400)
	p.Add(a)
	p.Sync()

	table.Resize(800, 800)
	p.Resize(800, 800)

	assert.Same(t, a, p.Pick(geometry.Vector{X: 400, Y: 400}))
	assert.Nil(t, p.Pick(geometry.Vector{X: 200, Y: 200}))
}
