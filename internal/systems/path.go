package systems

import (
	"cmp"
	"fmt"
	"slices"
	"tactics-core/internal/domain"
)

// AvailableMove - узел дерева кратчайших путей
type AvailableMove struct {
	Pos   domain.TilePos `json:"pos"`
	Prior domain.TilePos `json:"prior"`
	Cost  int            `json:"cost"`
}

// AvailableMoves - результат расчета: позиция -> (цена, откуда пришли).
// Корень (Origin) ссылается сам на себя с ценой 0.
type AvailableMoves struct {
	MapID  domain.MapID                     `json:"mapId"`
	Origin domain.TilePos                   `json:"origin"`
	Moves  map[domain.TilePos]AvailableMove `json:"-"`
}

func newAvailableMoves(mapID domain.MapID, origin domain.TilePos) *AvailableMoves {
	return &AvailableMoves{
		MapID:  mapID,
		Origin: origin,
		Moves: map[domain.TilePos]AvailableMove{
			origin: {Pos: origin, Prior: origin, Cost: 0},
		},
	}
}

// Contains - достижим ли тайл (корень тоже считается)
func (a *AvailableMoves) Contains(pos domain.TilePos) bool {
	_, ok := a.Moves[pos]
	return ok
}

// CostTo - цена пути до тайла
func (a *AvailableMoves) CostTo(pos domain.TilePos) (int, bool) {
	m, ok := a.Moves[pos]
	return m.Cost, ok
}

// Destinations - все достижимые тайлы кроме корня, по возрастанию цены, затем по (Y, X)
func (a *AvailableMoves) Destinations() []AvailableMove {
	out := make([]AvailableMove, 0, len(a.Moves))
	for pos, m := range a.Moves {
		if pos == a.Origin {
			continue
		}
		out = append(out, m)
	}
	slices.SortFunc(out, func(x, y AvailableMove) int {
		return cmp.Or(
			cmp.Compare(x.Cost, y.Cost),
			cmp.Compare(x.Pos.Y, y.Pos.Y),
			cmp.Compare(x.Pos.X, y.Pos.X),
		)
	})
	return out
}

// PathTo восстанавливает путь от корня до dest по ссылкам Prior.
// ok=false, если тайл недостижим. Цикл в ссылках - нарушение инварианта расчета, паника.
func (a *AvailableMoves) PathTo(dest domain.TilePos) ([]domain.TilePos, bool) {
	if !a.Contains(dest) {
		return nil, false
	}

	path := []domain.TilePos{dest}
	cur := dest
	for steps := 0; cur != a.Origin; steps++ {
		if steps > len(a.Moves) {
			panic(fmt.Sprintf("movement result has a cycle: %s never reaches origin %s", dest, a.Origin))
		}
		node, ok := a.Moves[cur]
		if !ok {
			panic(fmt.Sprintf("movement result is broken: %s points to unknown tile", cur))
		}
		cur = node.Prior
		path = append(path, cur)
	}

	slices.Reverse(path)
	return path, true
}
