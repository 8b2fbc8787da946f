package domain

import (
	"fmt"
	"slices"
)

func (m *GameMap) GetIndex(pos TilePos) int {
	return pos.Y*m.Width + pos.X
}

func (m *GameMap) InBounds(pos TilePos) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// Tile возвращает тайл по позиции (nil за пределами карты)
func (m *GameMap) Tile(pos TilePos) *Tile {
	if !m.InBounds(pos) {
		return nil
	}
	return &m.Tiles[m.GetIndex(pos)]
}

// ObjectsAt возвращает ID объектов в клетке
func (m *GameMap) ObjectsAt(pos TilePos) []ObjectID {
	t := m.Tile(pos)
	if t == nil {
		return nil
	}
	return t.Objects
}

// PlaceObject ставит объект в тайл его позиции.
// index < 0 - в конец списка, иначе вставка на указанное место (нужно при откате,
// чтобы вернуть объект туда же, где он был).
// Если места нет - ничего не меняется.
func (m *GameMap) PlaceObject(o *Object, index int) error {
	t := m.Tile(o.Pos)
	if t == nil {
		return fmt.Errorf("%w: %s on %s", ErrOutOfBounds, o.Pos, m.ID)
	}
	if err := t.Stacking.Increment(o.Stacking); err != nil {
		return fmt.Errorf("place %s at %s: %w", o.ID, o.Pos, err)
	}

	if index < 0 || index > len(t.Objects) {
		index = len(t.Objects)
	}
	t.Objects = slices.Insert(t.Objects, index, o.ID)
	return nil
}

// LiftObject убирает объект из тайла его позиции и возвращает, на каком месте он стоял.
// Порядок остальных сохраняется.
func (m *GameMap) LiftObject(o *Object) (int, error) {
	t := m.Tile(o.Pos)
	if t == nil {
		return -1, fmt.Errorf("%w: %s on %s", ErrOutOfBounds, o.Pos, m.ID)
	}

	idx := slices.Index(t.Objects, o.ID)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s is not in tile %s", ErrObjectNotFound, o.ID, o.Pos)
	}
	if err := t.Stacking.Decrement(o.Stacking); err != nil {
		return -1, err
	}
	t.Objects = slices.Delete(t.Objects, idx, idx+1)
	return idx, nil
}

// IndexOf - место объекта в списке тайла (-1, если его там нет)
func (m *GameMap) IndexOf(o *Object) int {
	t := m.Tile(o.Pos)
	if t == nil {
		return -1
	}
	return slices.Index(t.Objects, o.ID)
}

func (m *GameMap) IsEmpty() bool {
	for i := range m.Tiles {
		if len(m.Tiles[i].Objects) > 0 {
			return false
		}
	}
	return true
}

// Clone - полная копия карты (для снапшотов)
func (m *GameMap) Clone() *GameMap {
	c := *m
	c.Tiles = make([]Tile, len(m.Tiles))
	for i, t := range m.Tiles {
		c.Tiles[i] = Tile{
			Terrain:  t.Terrain,
			Objects:  slices.Clone(t.Objects),
			Stacking: t.Stacking.Clone(),
		}
	}
	return &c
}
