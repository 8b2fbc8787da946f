package systems

import (
	"tactics-core/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedCheck CheckVerdict

func (c fixedCheck) Check(MoveCheckInput) CheckVerdict { return CheckVerdict(c) }

// countingCheck запоминает, что до нее дошла очередь
type countingCheck struct{ calls int }

func (c *countingCheck) Check(MoveCheckInput) CheckVerdict {
	c.calls++
	return CheckPass
}

func TestTileMoveChecks_DenyStopsChain(t *testing.T) {
	tail := &countingCheck{}

	assert.False(t, TileMoveChecks{fixedCheck(CheckDeny), tail}.Allows(MoveCheckInput{}))
	assert.False(t, TileMoveChecks{fixedCheck(CheckPass), fixedCheck(CheckDeny)}.Allows(MoveCheckInput{}))
	assert.Zero(t, tail.calls)

	assert.True(t, TileMoveChecks{fixedCheck(CheckPass), tail}.Allows(MoveCheckInput{}))
	assert.Equal(t, 1, tail.calls)

	assert.True(t, TileMoveChecks{}.Allows(MoveCheckInput{}), "Пустая цепочка ничего не запрещает")
}

func TestMoveCheckAllowedTile(t *testing.T) {
	s := testWorld(t, ".~")
	mover := soldier(1, pos(0, 0), 3)
	place(t, s, mover)
	m := s.Maps[1]

	input := func(to domain.TilePos) MoveCheckInput {
		return MoveCheckInput{State: s, Map: m, Mover: mover, From: mover.Pos, To: to, Tile: m.Tile(to)}
	}

	assert.Equal(t, CheckDeny, MoveCheckAllowedTile{}.Check(input(pos(1, 0))))

	mover.Movement.TypeRules = domain.NewObjectTypeMovementRules()
	mover.Movement.TypeRules.Classes[buildingClass] = true
	place(t, s, &domain.Object{ID: 2, Type: bridgeType, MapID: 1, Pos: pos(1, 0), Stacking: groundStack})
	assert.Equal(t, CheckPass, MoveCheckAllowedTile{}.Check(input(pos(1, 0))), "Правило класса находит мост и перекрывает воду")

	// Без профиля движения войти никуда нельзя
	mover.Movement = nil
	assert.Equal(t, CheckDeny, MoveCheckAllowedTile{}.Check(input(pos(1, 0))))
}

func TestMoveCheckSpace(t *testing.T) {
	s := testWorld(t, "..")
	mover := soldier(1, pos(0, 0), 3)
	place(t, s, mover)
	m := s.Maps[1]

	in := MoveCheckInput{State: s, Map: m, Mover: mover, To: pos(1, 0), Tile: m.Tile(pos(1, 0))}
	assert.Equal(t, CheckPass, MoveCheckSpace{}.Check(in))

	other := soldier(2, pos(1, 0), 0)
	place(t, s, other)
	assert.Equal(t, CheckDeny, MoveCheckSpace{}.Check(in))
}

func TestMoveCheckAllowedTile_AnyDenyWins(t *testing.T) {
	s := testWorld(t, "..")
	mover := soldier(1, pos(0, 0), 3)
	mover.Movement.TypeRules = domain.NewObjectTypeMovementRules()
	mover.Movement.TypeRules.Types[bridgeType] = true
	mover.Movement.TypeRules.Types[wallType] = false
	place(t, s, mover)

	m := s.Maps[1]
	building := domain.StackingClass{Name: "Building"}
	m.Tile(pos(1, 0)).Stacking[building] = domain.StackCount{Max: 2}
	place(t, s, &domain.Object{ID: 2, Type: bridgeType, MapID: 1, Pos: pos(1, 0), Stacking: building})
	place(t, s, &domain.Object{ID: 3, Type: wallType, MapID: 1, Pos: pos(1, 0), Stacking: building})

	in := MoveCheckInput{State: s, Map: m, Mover: mover, From: mover.Pos, To: pos(1, 0), Tile: m.Tile(pos(1, 0))}
	assert.Equal(t, CheckDeny, MoveCheckAllowedTile{}.Check(in), "Стена запрещает вход, даже если мост стоит первым")
}

func TestMoveCheckSpace_DiscountsAllowedOccupants(t *testing.T) {
	s := testWorld(t, "..")
	mover := soldier(1, pos(0, 0), 3)
	place(t, s, mover)
	m := s.Maps[1]
	in := MoveCheckInput{State: s, Map: m, Mover: mover, To: pos(1, 0), Tile: m.Tile(pos(1, 0))}

	// Мост в классе пехоты занимает единственное место
	place(t, s, &domain.Object{ID: 2, Type: bridgeType, MapID: 1, Pos: pos(1, 0), Stacking: groundStack})
	assert.Equal(t, CheckDeny, MoveCheckSpace{}.Check(in), "Без правила мост занимает место как обычный объект")

	mover.Movement.TypeRules = domain.NewObjectTypeMovementRules()
	mover.Movement.TypeRules.Types[bridgeType] = true
	assert.Equal(t, CheckPass, MoveCheckSpace{}.Check(in))

	// Неизвестный тайлу класс стека - места нет
	mover.Stacking = domain.StackingClass{Name: "Air"}
	assert.Equal(t, CheckDeny, MoveCheckSpace{}.Check(in))
}
