package systems

import (
	"tactics-core/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(x, y int) domain.TilePos { return domain.TilePos{X: x, Y: y} }

func TestCalculateMoves_OpenField(t *testing.T) {
	s := testWorld(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	)
	place(t, s, soldier(1, pos(3, 3), 3))

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	// Ромб радиуса 3: 1 + 4 + 8 + 12
	assert.Len(t, moves.Moves, 25)
	assert.Len(t, moves.Destinations(), 24)

	for p, mv := range moves.Moves {
		assert.Equal(t, p.ManhattanTo(pos(3, 3)), mv.Cost, "cost at %s", p)
	}

	origin := moves.Moves[pos(3, 3)]
	assert.Equal(t, 0, origin.Cost)
	assert.Equal(t, pos(3, 3), origin.Prior, "Корень ссылается сам на себя")

	assert.False(t, moves.Contains(pos(0, 0)), "Дальше бюджета не уходим")
	assert.False(t, moves.Contains(pos(5, 5)))
}

func TestCalculateMoves_ZeroMovePoints(t *testing.T) {
	s := testWorld(t, "...", "...", "...")
	place(t, s, soldier(1, pos(1, 1), 0))

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	assert.Len(t, moves.Moves, 1)
	assert.Empty(t, moves.Destinations())
	assert.True(t, moves.Contains(pos(1, 1)))
}

func TestCalculateMoves_TerrainCosts(t *testing.T) {
	// Лес стоит 2, гора 3: за 3 очка через лес проходим только один тайл
	s := testWorld(t,
		".FM..",
	)
	place(t, s, soldier(1, pos(0, 0), 3))

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	cost, ok := moves.CostTo(pos(1, 0))
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	assert.False(t, moves.Contains(pos(2, 0)), "2 + 3 > 3")
}

func TestCalculateMoves_CheaperDetourWins(t *testing.T) {
	// Напрямую через две горы 7, обходом по нижнему ряду 5
	s := testWorld(t,
		".MM.",
		"....",
	)
	place(t, s, soldier(1, pos(0, 0), 7))

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	cost, _ := moves.CostTo(pos(3, 0))
	assert.Equal(t, 5, cost)

	path, ok := moves.PathTo(pos(3, 0))
	require.True(t, ok)
	assert.Equal(t, []domain.TilePos{pos(0, 0), pos(0, 1), pos(1, 1), pos(2, 1), pos(3, 1), pos(3, 0)}, path)
}

func TestCalculateMoves_ChainsTerminateWithMonotonicCost(t *testing.T) {
	s := testWorld(t,
		".F.M..",
		"..F...",
		"M...F.",
		"..F...",
	)
	place(t, s, soldier(1, pos(2, 2), 6))

	moves, err := NewSquareMovementCalculator(true).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	for _, dest := range moves.Destinations() {
		path, ok := moves.PathTo(dest.Pos)
		require.True(t, ok)
		assert.Equal(t, moves.Origin, path[0])
		assert.Equal(t, dest.Pos, path[len(path)-1])

		prev := -1
		for _, p := range path {
			cost, ok := moves.CostTo(p)
			require.True(t, ok)
			assert.Greater(t, cost, prev, "цена растет вдоль пути к %s", dest.Pos)
			prev = cost
		}
	}
}

func TestCalculateMoves_TieBreakFollowsNeighborOrder(t *testing.T) {
	// До (1,1) два пути одной цены. Север раскрывается первым, поэтому путь идет через (0,1).
	s := testWorld(t, "..", "..")
	place(t, s, soldier(1, pos(0, 0), 2))

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	assert.Equal(t, pos(0, 1), moves.Moves[pos(1, 1)].Prior)
}

func TestCalculateMoves_Diagonal(t *testing.T) {
	s := testWorld(t, "...", "...", "...")
	place(t, s, soldier(1, pos(0, 0), 1))

	orth, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)
	assert.False(t, orth.Contains(pos(1, 1)))

	diag, err := NewSquareMovementCalculator(true).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)
	cost, ok := diag.CostTo(pos(1, 1))
	require.True(t, ok)
	assert.Equal(t, 1, cost)
}

func TestCalculateMoves_WaterAndBlockers(t *testing.T) {
	s := testWorld(t,
		".~.",
		".~.",
		"...",
	)
	place(t, s, soldier(1, pos(0, 0), 6))
	// Чужой солдат перекрывает проход в (1,2)
	blocker := soldier(2, pos(1, 2), 0)
	blocker.Owner = 2
	place(t, s, blocker)

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	assert.False(t, moves.Contains(pos(1, 0)), "Вода запрещена правилами местности")
	assert.False(t, moves.Contains(pos(1, 2)), "Тайл занят: нет места в стеке")
	assert.False(t, moves.Contains(pos(2, 0)), "Обойти реку нельзя")
}

func TestCalculateMoves_BridgeOverridesTerrainAndStacking(t *testing.T) {
	s := testWorld(t,
		".~.",
	)
	mover := soldier(1, pos(0, 0), 3)
	mover.Movement.TypeRules = domain.NewObjectTypeMovementRules()
	mover.Movement.TypeRules.Types[bridgeType] = true
	place(t, s, mover)

	// Мост в том же классе стека: тайл "полон", но мост разрешает проход
	place(t, s, &domain.Object{ID: 2, Type: bridgeType, MapID: 1, Pos: pos(1, 0), Stacking: groundStack})

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)

	assert.True(t, moves.Contains(pos(1, 0)))
	cost, ok := moves.CostTo(pos(2, 0))
	require.True(t, ok)
	assert.Equal(t, 2, cost)
}

func TestCalculateMoves_BridgeDoesNotLetThroughOccupiedTile(t *testing.T) {
	s := testWorld(t, ".~.")
	mover := soldier(1, pos(0, 0), 3)
	mover.Movement.TypeRules = domain.NewObjectTypeMovementRules()
	mover.Movement.TypeRules.Types[bridgeType] = true
	place(t, s, mover)

	building := domain.StackingClass{Name: "Building"}
	s.Maps[1].Tile(pos(1, 0)).Stacking[building] = domain.StackCount{Max: 1}
	place(t, s, &domain.Object{ID: 2, Type: bridgeType, MapID: 1, Pos: pos(1, 0), Stacking: building})

	enemy := soldier(3, pos(1, 0), 0)
	enemy.Owner = 2
	place(t, s, enemy)

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)
	assert.False(t, moves.Contains(pos(1, 0)), "Мост не отменяет лимит стека пехоты")
	assert.False(t, moves.Contains(pos(2, 0)))
}

func TestCalculateMoves_ExplicitDenyByOccupant(t *testing.T) {
	s := testWorld(t, "...")
	mover := soldier(1, pos(0, 0), 3)
	mover.Movement.TypeRules = domain.NewObjectTypeMovementRules()
	mover.Movement.TypeRules.Groups[improvements] = false
	place(t, s, mover)

	// У стены свой класс стека, место для пехоты в тайле есть, но правило группы запрещает вход
	building := domain.StackingClass{Name: "Building"}
	s.Maps[1].Tile(pos(1, 0)).Stacking[building] = domain.StackCount{Max: 1}
	place(t, s, &domain.Object{ID: 2, Type: wallType, MapID: 1, Pos: pos(1, 0), Stacking: building})

	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, testRules(), 1)
	require.NoError(t, err)
	assert.False(t, moves.Contains(pos(1, 0)))
	assert.False(t, moves.Contains(pos(2, 0)))
}

func TestCalculateMoves_MissingCostPolicy(t *testing.T) {
	s := testWorld(t, ".L.")
	place(t, s, soldier(1, pos(0, 0), 5))

	rules := testRules()
	moves, err := NewSquareMovementCalculator(false).CalculateMoves(s, rules, 1)
	require.NoError(t, err)
	assert.False(t, moves.Contains(pos(1, 0)), "Нет цены - непроходимо")

	rules.Costs.Missing = domain.MissingCostDefault
	rules.Costs.DefaultCost = 2
	moves, err = NewSquareMovementCalculator(false).CalculateMoves(s, rules, 1)
	require.NoError(t, err)
	cost, ok := moves.CostTo(pos(2, 0))
	require.True(t, ok)
	assert.Equal(t, 3, cost)
}

func TestCalculateMoves_ConfigurationErrors(t *testing.T) {
	calc := NewSquareMovementCalculator(false)

	t.Run("no movement profile", func(t *testing.T) {
		s := testWorld(t, "..")
		o := soldier(1, pos(0, 0), 1)
		o.Movement = nil
		place(t, s, o)

		_, err := calc.CalculateMoves(s, testRules(), 1)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("unknown movement type", func(t *testing.T) {
		s := testWorld(t, "..")
		o := soldier(1, pos(0, 0), 1)
		o.Movement.Type = domain.MovementType{Name: "Hover"}
		place(t, s, o)

		_, err := calc.CalculateMoves(s, testRules(), 1)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("origin not on map", func(t *testing.T) {
		s := testWorld(t, "..")
		o := soldier(1, pos(0, 0), 1)
		place(t, s, o)
		s.Objects[1].MapID = 7

		_, err := calc.CalculateMoves(s, testRules(), 1)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("unknown object", func(t *testing.T) {
		s := testWorld(t, "..")
		_, err := calc.CalculateMoves(s, testRules(), 42)
		assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	})
}

func TestPathTo_Unreachable(t *testing.T) {
	moves := newAvailableMoves(1, pos(0, 0))
	_, ok := moves.PathTo(pos(3, 3))
	assert.False(t, ok)

	path, ok := moves.PathTo(pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, []domain.TilePos{pos(0, 0)}, path)
}

func TestPathTo_CyclePanics(t *testing.T) {
	moves := newAvailableMoves(1, pos(0, 0))
	moves.Moves[pos(1, 0)] = AvailableMove{Pos: pos(1, 0), Prior: pos(2, 0), Cost: 1}
	moves.Moves[pos(2, 0)] = AvailableMove{Pos: pos(2, 0), Prior: pos(1, 0), Cost: 2}

	assert.Panics(t, func() { moves.PathTo(pos(2, 0)) })
}

func TestFrontierQueue_OrdersByCostThenDiscovery(t *testing.T) {
	var q frontierQueue
	q.push(pos(0, 0), 2)
	q.push(pos(1, 0), 1)
	q.push(pos(2, 0), 2)
	q.push(pos(3, 0), 1)

	var order []domain.TilePos
	for q.len() > 0 {
		order = append(order, q.pop().Pos)
	}
	assert.Equal(t, []domain.TilePos{pos(1, 0), pos(3, 0), pos(0, 0), pos(2, 0)}, order)
}
