package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	grid := MergedGrid{
		{1, 1, 1},
		{1, 0, 2},
		{1, 1, 1},
	}
	const tile = 48

	assert.True(t, grid.IsEmpty(48, 48, tile))
	assert.True(t, grid.IsEmpty(95, 95, tile))
	assert.True(t, grid.IsEmpty(100, 50, tile), "reserved values are passable")
	assert.False(t, grid.IsEmpty(47, 48, tile))
	assert.False(t, grid.IsEmpty(-1, 50, tile))
	assert.False(t, grid.IsEmpty(50, 144, tile))
	assert.False(t, grid.IsEmpty(144, 50, tile))
	assert.False(t, grid.IsEmpty(50, 50, 0))
}

func TestBoxIsClear(t *testing.T) {
	grid := MergedGrid{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}
	const tile = 10

	assert.True(t, grid.BoxIsClear(10, 10, 20, 10, tile))
	assert.False(t, grid.BoxIsClear(10, 10, 21, 10, tile))
	assert.False(t, grid.BoxIsClear(9, 10, 10, 10, tile))
	assert.False(t, grid.BoxIsClear(10, 10, 10, 11, tile))
}

func TestString(t *testing.T) {
	grid := MergedGrid{{1, 0}, {0, 1}}
	assert.Equal(t, "X.\n.X\n", grid.String())
	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 2, grid.Cols())
	assert.Equal(t, 0, MergedGrid{}.Cols())
}
