package systems

import "tactics-core/internal/domain"

// CheckVerdict - ответ одной проверки тайла
type CheckVerdict uint8

const (
	// CheckPass - возражений нет, решают следующие проверки
	CheckPass CheckVerdict = iota
	// CheckDeny - войти нельзя
	CheckDeny
)

// MoveCheckInput - всё, что нужно проверке. Состояние только для чтения.
type MoveCheckInput struct {
	State *domain.GameState
	Map   *domain.GameMap
	Mover *domain.Object
	From  domain.TilePos
	To    domain.TilePos
	Tile  *domain.Tile
}

// occupants - объекты в тайле, кроме самого ходящего
func (in MoveCheckInput) occupants() []*domain.Object {
	out := make([]*domain.Object, 0, len(in.Tile.Objects))
	for _, id := range in.Tile.Objects {
		if id == in.Mover.ID {
			continue
		}
		if occupant, ok := in.State.Objects[id]; ok {
			out = append(out, occupant)
		}
	}
	return out
}

// TileMoveCheck - фильтр "можно ли войти в тайл", независимый от цены
type TileMoveCheck interface {
	Check(in MoveCheckInput) CheckVerdict
}

// TileMoveChecks - цепочка проверок. Тайл проходим, только если ни одна не сказала Deny.
type TileMoveChecks []TileMoveCheck

func (c TileMoveChecks) Allows(in MoveCheckInput) bool {
	for _, check := range c {
		if check.Check(in) == CheckDeny {
			return false
		}
	}
	return true
}

// DefaultMoveChecks - правила местности/типов, затем место в стеке
func DefaultMoveChecks() TileMoveChecks {
	return TileMoveChecks{MoveCheckAllowedTile{}, MoveCheckSpace{}}
}

// MoveCheckAllowedTile проверяет объекты в тайле и местность.
// Явный запрет по типу любого объекта в тайле закрывает тайл.
// Явное разрешение заменяет только вердикт местности (мост через воду),
// место в стеке по-прежнему проверяет MoveCheckSpace.
type MoveCheckAllowedTile struct{}

func (MoveCheckAllowedTile) Check(in MoveCheckInput) CheckVerdict {
	mv := in.Mover.Movement
	if mv == nil {
		return CheckDeny
	}

	granted := false
	if !mv.TypeRules.Empty() {
		for _, occupant := range in.occupants() {
			allowed, ok := mv.TypeRules.Allows(occupant.Type)
			if !ok {
				continue
			}
			if !allowed {
				return CheckDeny
			}
			granted = true
		}
	}

	if !granted && !mv.Terrain.Allows(in.Tile.Terrain) {
		return CheckDeny
	}
	return CheckPass
}

// MoveCheckSpace - есть ли в тайле место для класса стека ходящего.
// Места, которые держат явно разрешенные ходящему объекты (мост в том же классе), не считаются.
type MoveCheckSpace struct{}

func (MoveCheckSpace) Check(in MoveCheckInput) CheckVerdict {
	count, ok := in.Tile.Stacking[in.Mover.Stacking]
	if !ok {
		return CheckDeny
	}

	used := count.Current
	if mv := in.Mover.Movement; mv != nil && !mv.TypeRules.Empty() {
		for _, occupant := range in.occupants() {
			if occupant.Stacking != in.Mover.Stacking {
				continue
			}
			if allowed, ok := mv.TypeRules.Allows(occupant.Type); ok && allowed {
				used--
			}
		}
	}

	if used < count.Max {
		return CheckPass
	}
	return CheckDeny
}
