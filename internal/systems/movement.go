package systems

import (
	"tactics-core/internal/domain"
	"tactics-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MovementCalculator считает, куда объект может дойти за свои очки хода.
// Реализация только читает состояние.
type MovementCalculator interface {
	CalculateMoves(state *domain.GameState, rules *domain.Ruleset, mover domain.ObjectID) (*AvailableMoves, error)
}

// SquareMovementCalculator - Дейкстра по квадратной сетке (4 или 8 соседей)
type SquareMovementCalculator struct {
	Diagonal bool
	Checks   TileMoveChecks
}

func NewSquareMovementCalculator(diagonal bool) *SquareMovementCalculator {
	return &SquareMovementCalculator{
		Diagonal: diagonal,
		Checks:   DefaultMoveChecks(),
	}
}

// CalculateMoves возвращает все тайлы, достижимые в пределах MovePoints, с минимальной ценой.
// Стартовый тайл всегда в результате с ценой 0 и ссылкой на себя.
// Ошибка конфигурации, если у объекта нет профиля движения или его нет на карте.
func (c *SquareMovementCalculator) CalculateMoves(state *domain.GameState, rules *domain.Ruleset, moverID domain.ObjectID) (*AvailableMoves, error) {
	mover, err := state.Object(moverID)
	if err != nil {
		return nil, err
	}

	mv := mover.Movement
	if mv == nil {
		return nil, domain.ConfigErrorf("object %s has no movement profile", mover.ID)
	}
	if mv.Type.Name == "" || !rules.Costs.Knows(mv.Type) {
		return nil, domain.ConfigErrorf("object %s has unknown movement type %q", mover.ID, mv.Type.Name)
	}

	m, ok := state.Maps[mover.MapID]
	if !ok || !m.InBounds(mover.Pos) {
		return nil, domain.ConfigErrorf("object %s origin %s is not on %s", mover.ID, mover.Pos, mover.MapID)
	}

	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "movement_system",
		"object_id":   mover.ID,
		"origin":      mover.Pos,
		"move_points": mv.MovePoints,
	})

	origin := mover.Pos
	result := newAvailableMoves(mover.MapID, origin)

	budget := mv.MovePoints
	if budget < 0 {
		budget = 0
	}

	checks := c.Checks
	if checks == nil {
		checks = DefaultMoveChecks()
	}

	var q frontierQueue
	q.push(origin, 0)

	for q.len() > 0 {
		cur := q.pop()

		// Устаревшая запись: узел уже улучшили после того, как положили в очередь
		if best := result.Moves[cur.Pos]; cur.Cost > best.Cost {
			continue
		}

		for _, next := range cur.Pos.Neighbors(c.Diagonal) {
			tile := m.Tile(next)
			if tile == nil {
				continue
			}

			stepCost, passable := rules.Costs.Resolve(tile.Terrain, mv.Type)
			if !passable || stepCost < 0 {
				continue
			}

			total := cur.Cost + stepCost
			if total > budget {
				continue
			}
			if known, seen := result.Moves[next]; seen && known.Cost <= total {
				continue
			}

			in := MoveCheckInput{State: state, Map: m, Mover: mover, From: cur.Pos, To: next, Tile: tile}
			if !checks.Allows(in) {
				continue
			}

			result.Moves[next] = AvailableMove{Pos: next, Prior: cur.Pos, Cost: total}
			q.push(next, total)
		}
	}

	moveLogger.WithField("reachable", len(result.Moves)).Debug("Movement range calculated")
	return result, nil
}
