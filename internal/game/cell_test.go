package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	c := newCell(2, 3)
	assert.Equal(t, 2, c.Row())
	assert.Equal(t, 3, c.Col())
	assert.True(t, c.IsUnassigned())
	assert.False(t, c.HasMine())
	assert.False(t, c.Revealed())
}

func TestCellAssignMine(t *testing.T) {
	c := newCell(0, 0)
	c.assignMine()
	assert.True(t, c.HasMine())
	assert.False(t, c.IsUnassigned())

	require.PanicsWithValue(t, AssertionError{"cell 0:0 is already assigned"}, func() {
		c.assignMine()
	})
}

func TestCellSetAdjacencyCount(t *testing.T) {
	for n := range 9 {
		c := newCell(1, 1)
		c.setAdjacencyCount(n)
		assert.Equal(t, Value(n), c.Value())
		assert.False(t, c.HasMine())
	}

	c := newCell(1, 1)
	require.Panics(t, func() { c.setAdjacencyCount(9) })
	require.Panics(t, func() { c.setAdjacencyCount(-1) })

	c.setAdjacencyCount(0)
	require.Panics(t, func() { c.setAdjacencyCount(1) })
	require.Panics(t, func() { c.assignMine() })
	assert.Equal(t, Value(0), c.Value())
}

func TestCellMarkRevealed(t *testing.T) {
	c := newCell(0, 0)
	c.markRevealed()
	c.markRevealed()
	assert.True(t, c.Revealed())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "*", Mine.String())
	assert.Equal(t, "?", Unassigned.String())
	assert.Equal(t, "0", Value(0).String())
	assert.Equal(t, "8", Value(8).String())
}
