package engine

import (
	"fmt"
	"slices"
	"tactics-core/internal/domain"
	"tactics-core/internal/systems"
	"tactics-core/pkg/api"

	"github.com/go-gl/mathgl/mgl64"
)

// Все запросы возвращают копии: снаружи состояние не меняется в обход лога команд.

func (g *Game) Object(id domain.ObjectID) (*domain.Object, error) {
	o, err := g.state.Object(id)
	if err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// Objects - все объекты партии по возрастанию ID
func (g *Game) Objects() []*domain.Object {
	ids := g.state.SortedObjectIDs()
	out := make([]*domain.Object, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.state.Objects[id].Clone())
	}
	return out
}

func (g *Game) Map(id domain.MapID) (*domain.GameMap, error) {
	m, err := g.state.Map(id)
	if err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

// MapIDs - карты партии по возрастанию ID
func (g *Game) MapIDs() []domain.MapID {
	ids := make([]domain.MapID, 0, len(g.state.Maps))
	for id := range g.state.Maps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ObjectsAt - объекты тайла в порядке стека (снизу вверх)
func (g *Game) ObjectsAt(mapID domain.MapID, pos domain.TilePos) []*domain.Object {
	objs := g.state.ObjectsAt(mapID, pos)
	out := make([]*domain.Object, len(objs))
	for i, o := range objs {
		out[i] = o.Clone()
	}
	return out
}

// TileInfo - местность и счетчики стека тайла
func (g *Game) TileInfo(mapID domain.MapID, pos domain.TilePos) (domain.Tile, error) {
	m, err := g.state.Map(mapID)
	if err != nil {
		return domain.Tile{}, err
	}
	t := m.Tile(pos)
	if t == nil {
		return domain.Tile{}, fmt.Errorf("%w: %s on %s", domain.ErrOutOfBounds, pos, mapID)
	}
	return domain.Tile{
		Terrain:  t.Terrain,
		Objects:  slices.Clone(t.Objects),
		Stacking: t.Stacking.Clone(),
	}, nil
}

// WorldToTile - какой тайл карты лежит под мировой точкой
func (g *Game) WorldToTile(mapID domain.MapID, world mgl64.Vec2) (domain.TilePos, bool, error) {
	m, err := g.state.Map(mapID)
	if err != nil {
		return domain.TilePos{}, false, err
	}
	pos, ok := m.Geometry.WorldToTile(world, m.Width, m.Height)
	return pos, ok, nil
}

func (g *Game) TileToWorld(mapID domain.MapID, pos domain.TilePos) (mgl64.Vec2, error) {
	m, err := g.state.Map(mapID)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return m.Geometry.TileToWorld(pos), nil
}

// AvailableMoves - куда объект может пойти из текущей позиции
func (g *Game) AvailableMoves(id domain.ObjectID) (*systems.AvailableMoves, error) {
	return g.calc.CalculateMoves(g.state, g.rules, id)
}

// PathTo - кратчайший путь объекта до dest (включая старт и dest)
func (g *Game) PathTo(id domain.ObjectID, dest domain.TilePos) ([]domain.TilePos, error) {
	moves, err := g.AvailableMoves(id)
	if err != nil {
		return nil, err
	}
	path, ok := moves.PathTo(dest)
	if !ok {
		return nil, domain.IllegalMovef("%s cannot reach %s", id, dest)
	}
	return path, nil
}

// Snapshot - глубокая копия состояния. С ней можно работать из других горутин.
func (g *Game) Snapshot() *domain.GameState {
	return g.state.Snapshot()
}

// HistoryEntry - запись лога команд для внешнего мира
type HistoryEntry struct {
	Seq    uint64             `json:"seq"`
	ID     string             `json:"id"`
	Kind   domain.CommandKind `json:"kind"`
	Status CommandStatus      `json:"status"`
}

func (g *Game) History() []HistoryEntry {
	entries := g.history.Entries()
	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntry{Seq: e.Seq, ID: e.ID.String(), Kind: e.Command.Kind(), Status: e.Status}
	}
	return out
}

func (g *Game) HistoryCursor() int { return g.history.Cursor() }

func (g *Game) CurrentPlayer() domain.PlayerID { return g.state.CurrentPlayer() }

func (g *Game) Turn() domain.TurnState { return g.state.Turn }

func (g *Game) Players() []domain.Player { return slices.Clone(g.state.Players) }

func (g *Game) Rules() *domain.Ruleset { return g.rules }

// Workers - сколько горутин отдавать планировщику
func (g *Game) Workers() int { return g.cfg.Workers }

// Calculator - алгоритм расчета ходов (нужен планировщику для работы по снапшоту)
func (g *Game) Calculator() systems.MovementCalculator { return g.calc }

func (g *Game) Summary() api.StateSummary {
	return api.StateSummary{
		GameID:        g.state.ID.String(),
		Turn:          g.state.Turn.Number,
		CurrentPlayer: uint8(g.state.CurrentPlayer()),
		Maps:          len(g.state.Maps),
		Objects:       len(g.state.Objects),
		HistoryLength: g.history.Len(),
		HistoryCursor: g.history.Cursor(),
	}
}
