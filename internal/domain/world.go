package domain

// Tile - одна клетка карты
type Tile struct {
	Terrain TerrainType `json:"terrain"`

	// Objects - кто стоит в тайле, в порядке прихода.
	// Порядок важен для правил типов (решает первый объект с правилом).
	Objects []ObjectID `json:"objects"`

	Stacking TileStackingRules `json:"-"`
}

// GameMap - прямоугольная карта тайлов
type GameMap struct {
	ID     MapID `json:"id"`
	Width  int   `json:"width"`
	Height int   `json:"height"`

	// Tiles хранятся построчно: индекс = Y * Width + X
	Tiles []Tile `json:"tiles"`

	Geometry MapGeometry `json:"-"`
}

// NewGameMap создает карту из списка местности (построчно, снизу вверх по Y).
// Каждый тайл получает свою копию шаблона стека.
func NewGameMap(id MapID, width, height int, terrain []TerrainType, stacking TileStackingRules) (*GameMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ConfigErrorf("map %d has invalid size %dx%d", id, width, height)
	}
	if len(terrain) != width*height {
		return nil, ConfigErrorf("map %d: expected %d terrain entries, got %d", id, width*height, len(terrain))
	}

	m := &GameMap{
		ID:       id,
		Width:    width,
		Height:   height,
		Tiles:    make([]Tile, width*height),
		Geometry: DefaultGeometry(),
	}
	for i := range m.Tiles {
		m.Tiles[i] = Tile{
			Terrain:  terrain[i],
			Objects:  make([]ObjectID, 0, 1),
			Stacking: stacking.Clone(),
		}
	}
	return m, nil
}
