package domain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMapGeometry_RoundTrip(t *testing.T) {
	g := MapGeometry{Origin: mgl64.Vec2{100, -20}, TileSize: mgl64.Vec2{16, 8}}

	world := g.TileToWorld(TilePos{X: 3, Y: 2})
	assert.InDelta(t, 148.0, world.X(), 1e-9)
	assert.InDelta(t, -4.0, world.Y(), 1e-9)

	pos, ok := g.WorldToTile(world, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, TilePos{X: 3, Y: 2}, pos)

	// Точка в пределах половины тайла от центра попадает в тот же тайл
	pos, ok = g.WorldToTile(world.Add(mgl64.Vec2{7.9, -3.9}), 10, 10)
	assert.True(t, ok)
	assert.Equal(t, TilePos{X: 3, Y: 2}, pos)
}

func TestMapGeometry_OutsideMap(t *testing.T) {
	g := DefaultGeometry()

	_, ok := g.WorldToTile(mgl64.Vec2{-0.6, 0}, 4, 4)
	assert.False(t, ok)
	_, ok = g.WorldToTile(mgl64.Vec2{3.6, 0}, 4, 4)
	assert.False(t, ok)

	_, ok = MapGeometry{}.WorldToTile(mgl64.Vec2{0, 0}, 4, 4)
	assert.False(t, ok, "Нулевой размер тайла")
}
