package domain

import "fmt"

// TilePos - координата тайла на карте. Y растет "на север".
type TilePos struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p TilePos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Shift возвращает новую позицию со смещением (текущая не меняется)
func (p TilePos) Shift(dx, dy int) TilePos {
	return TilePos{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo - расстояние в ортогональных шагах
func (p TilePos) ManhattanTo(other TilePos) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// ChebyshevTo - расстояние в шагах с диагоналями (король в шахматах)
func (p TilePos) ChebyshevTo(other TilePos) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// Направления соседей. Порядок важен: он определяет порядок обхода
// в поиске пути, а значит и то, какой из равных по цене путей найдется первым.
var (
	orthogonalOffsets = [4]TilePos{
		{X: 0, Y: 1},  // North
		{X: 1, Y: 0},  // East
		{X: 0, Y: -1}, // South
		{X: -1, Y: 0}, // West
	}
	diagonalOffsets = [4]TilePos{
		{X: -1, Y: 1},  // NW
		{X: 1, Y: 1},   // NE
		{X: 1, Y: -1},  // SE
		{X: -1, Y: -1}, // SW
	}
)

// Neighbors возвращает соседние позиции (без проверки границ карты)
func (p TilePos) Neighbors(diagonal bool) []TilePos {
	n := 4
	if diagonal {
		n = 8
	}
	out := make([]TilePos, 0, n)
	for _, o := range orthogonalOffsets {
		out = append(out, p.Shift(o.X, o.Y))
	}
	if diagonal {
		for _, o := range diagonalOffsets {
			out = append(out, p.Shift(o.X, o.Y))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
