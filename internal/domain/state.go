package domain

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Player - участник партии
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

// TurnState - чей сейчас ход
type TurnState struct {
	Number  int `json:"number"`  // номер хода, начиная с 1
	Current int `json:"current"` // индекс в Players
}

// GameState - всё изменяемое состояние одной партии.
// Менять его можно только командами (см. engine.Command).
type GameState struct {
	ID uuid.UUID `json:"id"`

	Maps    map[MapID]*GameMap   `json:"-"`
	Objects map[ObjectID]*Object `json:"-"`
	Players []Player             `json:"players"`
	Turn    TurnState            `json:"turn"`
}

func NewGameState(id uuid.UUID, players []Player) *GameState {
	return &GameState{
		ID:      id,
		Maps:    make(map[MapID]*GameMap),
		Objects: make(map[ObjectID]*Object),
		Players: slices.Clone(players),
		Turn:    TurnState{Number: 1},
	}
}

// --- Чтение ---

func (s *GameState) Object(id ObjectID) (*Object, error) {
	o, ok := s.Objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	return o, nil
}

func (s *GameState) Map(id MapID) (*GameMap, error) {
	m, ok := s.Maps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, id)
	}
	return m, nil
}

// ObjectsAt возвращает объекты в клетке в порядке прихода
func (s *GameState) ObjectsAt(mapID MapID, pos TilePos) []*Object {
	m, ok := s.Maps[mapID]
	if !ok {
		return nil
	}
	ids := m.ObjectsAt(pos)
	out := make([]*Object, 0, len(ids))
	for _, id := range ids {
		if o, ok := s.Objects[id]; ok {
			out = append(out, o)
		}
	}
	return out
}

// CurrentPlayer - игрок, который сейчас ходит (NoPlayer, если игроков нет)
func (s *GameState) CurrentPlayer() PlayerID {
	if len(s.Players) == 0 {
		return NoPlayer
	}
	return s.Players[s.Turn.Current%len(s.Players)].ID
}

// SortedObjectIDs - детерминированный порядок обхода объектов
func (s *GameState) SortedObjectIDs() []ObjectID {
	return slices.Sorted(maps.Keys(s.Objects))
}

// --- Запись (только для команд) ---

// InsertObject регистрирует объект и ставит его в тайл.
// index - место в списке тайла (-1 - в конец).
func (s *GameState) InsertObject(o *Object, index int) error {
	if _, exists := s.Objects[o.ID]; exists {
		return fmt.Errorf("object %s already exists", o.ID)
	}
	m, err := s.Map(o.MapID)
	if err != nil {
		return err
	}
	if err := m.PlaceObject(o, index); err != nil {
		return err
	}
	s.Objects[o.ID] = o
	return nil
}

// DeleteObject убирает объект из тайла и реестра. Возвращает его место в тайле.
func (s *GameState) DeleteObject(id ObjectID) (int, error) {
	o, err := s.Object(id)
	if err != nil {
		return -1, err
	}
	m, err := s.Map(o.MapID)
	if err != nil {
		return -1, err
	}
	idx, err := m.LiftObject(o)
	if err != nil {
		return -1, err
	}
	delete(s.Objects, id)
	return idx, nil
}

// RelocateObject переставляет объект в другую клетку той же карты.
// При неудаче объект остается на старом месте.
func (s *GameState) RelocateObject(id ObjectID, to TilePos, index int) (from TilePos, fromIndex int, err error) {
	o, err := s.Object(id)
	if err != nil {
		return TilePos{}, -1, err
	}
	m, err := s.Map(o.MapID)
	if err != nil {
		return TilePos{}, -1, err
	}
	if !m.InBounds(to) {
		return TilePos{}, -1, fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}

	from = o.Pos
	fromIndex, err = m.LiftObject(o)
	if err != nil {
		return TilePos{}, -1, err
	}

	o.Pos = to
	if err := m.PlaceObject(o, index); err != nil {
		// Возвращаем как было
		o.Pos = from
		if rerr := m.PlaceObject(o, fromIndex); rerr != nil {
			panic(fmt.Sprintf("relocate %s: cannot restore original tile: %v", id, rerr))
		}
		return TilePos{}, -1, err
	}
	return from, fromIndex, nil
}

// ReplaceObject подменяет запись объекта (здоровье, владелец) без перестановки на карте
func (s *GameState) ReplaceObject(o *Object) error {
	cur, err := s.Object(o.ID)
	if err != nil {
		return err
	}
	if cur.MapID != o.MapID || cur.Pos != o.Pos || cur.Stacking != o.Stacking {
		return fmt.Errorf("replace %s: placement must not change", o.ID)
	}
	s.Objects[o.ID] = o
	return nil
}

func (s *GameState) InsertMap(m *GameMap) error {
	if _, exists := s.Maps[m.ID]; exists {
		return fmt.Errorf("map %s already exists", m.ID)
	}
	s.Maps[m.ID] = m
	return nil
}

// DeleteMap удаляет карту. На карте не должно остаться объектов.
func (s *GameState) DeleteMap(id MapID) (*GameMap, error) {
	m, err := s.Map(id)
	if err != nil {
		return nil, err
	}
	if !m.IsEmpty() {
		return nil, fmt.Errorf("map %s still has objects", id)
	}
	delete(s.Maps, id)
	return m, nil
}

// Snapshot - глубокая копия состояния. Фоновые вычисления (ИИ) работают только с ней.
func (s *GameState) Snapshot() *GameState {
	c := &GameState{
		ID:      s.ID,
		Maps:    make(map[MapID]*GameMap, len(s.Maps)),
		Objects: make(map[ObjectID]*Object, len(s.Objects)),
		Players: slices.Clone(s.Players),
		Turn:    s.Turn,
	}
	for id, m := range s.Maps {
		c.Maps[id] = m.Clone()
	}
	for id, o := range s.Objects {
		c.Objects[id] = o.Clone()
	}
	return c
}
