package config

// DefaultRules - правила стандартной партии: суша и вода, пехота и техника, мосты.
func DefaultRules() Rules {
	return Rules{
		Diagonal:       false,
		MissingCost:    "impassable",
		TerrainClasses: []string{"Ground", "Water"},
		TerrainTypes: []TerrainDef{
			{Name: "Grassland", Class: "Ground"},
			{Name: "Forest", Class: "Ground"},
			{Name: "Mountain", Class: "Ground"},
			{Name: "Hill", Class: "Ground"},
			{Name: "Sand", Class: "Ground"},
			{Name: "CoastWater", Class: "Water"},
			{Name: "Ocean", Class: "Water"},
		},
		MovementTypes: []string{"Infantry", "Tread"},
		// Прибрежная вода стоит 1, но правила местности юнитов ее запрещают: пройти можно только по мосту.
		// Для океана цен нет, по политике impassable он закрыт даже для моста.
		MovementCosts: []CostDef{
			{Movement: "Infantry", Costs: map[string]int{"Grassland": 1, "Forest": 1, "Mountain": 3, "Hill": 2, "Sand": 1, "CoastWater": 1}},
			{Movement: "Tread", Costs: map[string]int{"Grassland": 1, "Forest": 2, "Mountain": 3, "Hill": 2, "Sand": 2, "CoastWater": 1}},
		},
		ObjectClasses: []string{"Ground", "Building"},
		ObjectGroups: []GroupDef{
			{Name: "Infantry", Class: "Ground"},
			{Name: "Vehicle", Class: "Ground"},
			{Name: "Improvement", Class: "Building"},
		},
		ObjectTypes: []TypeDef{
			{Name: "Rifleman", Group: "Infantry"},
			{Name: "LightTank", Group: "Vehicle"},
			{Name: "Bridge", Group: "Improvement"},
			{Name: "Barracks", Group: "Improvement"},
		},
		Stacking: []StackingDef{
			{Class: "Ground", Max: 1},
			{Class: "Building", Max: 1},
		},
		Templates: []TemplateDef{
			{
				Name:     "rifleman",
				Type:     "Rifleman",
				Stacking: "Ground",
				Movement: &MovementDef{
					MovePoints:     3,
					Type:           "Infantry",
					TerrainClasses: []string{"Ground"},
					ObjectTypes:    map[string]bool{"Bridge": true},
				},
				Health: &HealthDef{Max: 10},
				Attack: &AttackDef{Default: 3, Range: 1, PerType: map[string]int{"LightTank": 1, "Barracks": 4}},
			},
			{
				Name:     "light_tank",
				Type:     "LightTank",
				Stacking: "Ground",
				Movement: &MovementDef{
					MovePoints:     5,
					Type:           "Tread",
					TerrainClasses: []string{"Ground"},
					TerrainTypes:   map[string]bool{"Mountain": false},
					ObjectTypes:    map[string]bool{"Bridge": true},
				},
				Health: &HealthDef{Max: 20},
				Attack: &AttackDef{Default: 5, Range: 1, PerType: map[string]int{"Rifleman": 6}},
			},
			{
				Name:     "bridge",
				Type:     "Bridge",
				Stacking: "Building",
			},
			{
				Name:     "barracks",
				Type:     "Barracks",
				Stacking: "Building",
				Health:   &HealthDef{Max: 15, OnDeath: "capture", RestoreAt: 5},
			},
		},
		Layouts: []LayoutDef{
			{
				Name:   "river",
				Legend: map[string]string{"G": "Grassland", "F": "Forest", "M": "Mountain", "H": "Hill", "S": "Sand", "W": "CoastWater", "O": "Ocean"},
				Rows: []string{
					"GGFGSWGGGG",
					"GFFGSWSGHG",
					"GGGGSWSGGG",
					"GMGGGWSGFG",
					"GMHGGWGGFG",
					"GGGGSWGGGG",
				},
			},
		},
		Generator: GeneratorDef{
			Smoothing: 2,
			Weights: []WeightDef{
				{Terrain: "Grassland", Weight: 6},
				{Terrain: "Forest", Weight: 2},
				{Terrain: "Hill", Weight: 1},
				{Terrain: "Mountain", Weight: 1},
				{Terrain: "Sand", Weight: 1},
				{Terrain: "CoastWater", Weight: 1},
			},
		},
		Geometry: GeometryDef{TileSize: [2]float64{16, 16}},
	}
}
