package domain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MapGeometry - как карта лежит в мировых координатах.
// Центр тайла (0,0) совпадает с Origin, шаг сетки - TileSize.
type MapGeometry struct {
	Origin   mgl64.Vec2
	TileSize mgl64.Vec2
}

func DefaultGeometry() MapGeometry {
	return MapGeometry{TileSize: mgl64.Vec2{1, 1}}
}

func (g MapGeometry) transform() mgl64.Mat3 {
	return mgl64.Translate2D(g.Origin.X(), g.Origin.Y())
}

// WorldToTile переводит мировую точку в тайл карты размера width x height.
// ok=false, если точка вне карты.
func (g MapGeometry) WorldToTile(world mgl64.Vec2, width, height int) (TilePos, bool) {
	if g.TileSize.X() <= 0 || g.TileSize.Y() <= 0 {
		return TilePos{}, false
	}

	local := g.transform().Inv().Mul3x1(world.Vec3(1)).Vec2()
	x := math.Floor(local.X()/g.TileSize.X() + 0.5)
	y := math.Floor(local.Y()/g.TileSize.Y() + 0.5)

	if x < 0 || y < 0 || x >= float64(width) || y >= float64(height) {
		return TilePos{}, false
	}
	return TilePos{X: int(x), Y: int(y)}, true
}

// TileToWorld возвращает мировые координаты центра тайла
func (g MapGeometry) TileToWorld(pos TilePos) mgl64.Vec2 {
	center := mgl64.Vec3{
		float64(pos.X) * g.TileSize.X(),
		float64(pos.Y) * g.TileSize.Y(),
		1,
	}
	return g.transform().Mul3x1(center).Vec2()
}
