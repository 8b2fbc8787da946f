package systems

import (
	"tactics-core/internal/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	ground = domain.TerrainClass{Name: "Ground"}
	water  = domain.TerrainClass{Name: "Water"}

	grass    = domain.TerrainType{Name: "Grassland", Class: ground}
	forest   = domain.TerrainType{Name: "Forest", Class: ground}
	mountain = domain.TerrainType{Name: "Mountain", Class: ground}
	river    = domain.TerrainType{Name: "River", Class: water}
	lava     = domain.TerrainType{Name: "Lava", Class: ground} // без цены

	infantry = domain.MovementType{Name: "Infantry"}

	unitClass     = domain.ObjectClass{Name: "Unit"}
	buildingClass = domain.ObjectClass{Name: "Building"}
	infantryGroup = domain.ObjectGroup{Name: "Infantry", Class: unitClass}
	improvements  = domain.ObjectGroup{Name: "Improvement", Class: buildingClass}
	soldierType   = domain.ObjectType{Name: "Soldier", Group: infantryGroup}
	bridgeType    = domain.ObjectType{Name: "Bridge", Group: improvements}
	wallType      = domain.ObjectType{Name: "Wall", Group: improvements}

	groundStack = domain.StackingClass{Name: "Ground"}
)

func testRules() *domain.Ruleset {
	costs := domain.NewTerrainMovementCosts()
	costs.Set(grass, infantry, 1)
	costs.Set(forest, infantry, 2)
	costs.Set(mountain, infantry, 3)
	costs.Set(river, infantry, 1)

	return &domain.Ruleset{
		Costs:        costs,
		TileStacking: domain.NewTileStackingRules(map[domain.StackingClass]int{groundStack: 1}),
	}
}

// testWorld строит состояние с одной картой. rows[0] - строка y=0.
// Символы: . трава, F лес, M гора, ~ река, L лава.
func testWorld(t *testing.T, rows ...string) *domain.GameState {
	t.Helper()

	legend := map[rune]domain.TerrainType{'.': grass, 'F': forest, 'M': mountain, '~': river, 'L': lava}
	var terrain []domain.TerrainType
	for _, row := range rows {
		for _, ch := range row {
			tt, ok := legend[ch]
			require.True(t, ok, "unknown symbol %q", ch)
			terrain = append(terrain, tt)
		}
	}

	m, err := domain.NewGameMap(1, len(rows[0]), len(rows), terrain, testRules().TileStacking)
	require.NoError(t, err)

	s := domain.NewGameState(uuid.New(), []domain.Player{{ID: 1}, {ID: 2}})
	require.NoError(t, s.InsertMap(m))
	return s
}

func soldier(id domain.ObjectID, pos domain.TilePos, mp int) *domain.Object {
	return &domain.Object{
		ID:       id,
		Type:     soldierType,
		Owner:    1,
		MapID:    1,
		Pos:      pos,
		Stacking: groundStack,
		Movement: &domain.MovementComponent{
			MovePoints: mp,
			Type:       infantry,
			Terrain:    domain.NewObjectTerrainMovementRules([]domain.TerrainClass{ground}, nil),
		},
	}
}

func place(t *testing.T, s *domain.GameState, o *domain.Object) {
	t.Helper()
	require.NoError(t, s.InsertObject(o, -1))
}
