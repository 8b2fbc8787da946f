package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTilePos_Neighbors(t *testing.T) {
	p := TilePos{X: 2, Y: 2}

	assert.Equal(t, []TilePos{{2, 3}, {3, 2}, {2, 1}, {1, 2}}, p.Neighbors(false))
	assert.Equal(t, []TilePos{
		{2, 3}, {3, 2}, {2, 1}, {1, 2},
		{1, 3}, {3, 3}, {3, 1}, {1, 1},
	}, p.Neighbors(true))
}

func TestTilePos_Distances(t *testing.T) {
	a := TilePos{X: 1, Y: 1}
	b := TilePos{X: 4, Y: -1}

	assert.Equal(t, 5, a.ManhattanTo(b))
	assert.Equal(t, 3, a.ChebyshevTo(b))
	assert.Equal(t, "(4,-1)", b.String())
}
