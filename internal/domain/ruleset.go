package domain

// ObjectTemplate - из чего собирается объект при спавне
type ObjectTemplate struct {
	Name     string
	Type     ObjectType
	Stacking StackingClass

	Movement *MovementComponent
	Health   *HealthComponent
	Attack   *AttackComponent
}

// Instantiate создает новый объект по шаблону. Компоненты копируются,
// поэтому изменения здоровья одного объекта не задевают другие.
func (t ObjectTemplate) Instantiate(id ObjectID, owner PlayerID, mapID MapID, pos TilePos) *Object {
	proto := &Object{
		ID:       id,
		Type:     t.Type,
		Template: t.Name,
		Owner:    owner,
		MapID:    mapID,
		Pos:      pos,
		Stacking: t.Stacking,
		Movement: t.Movement,
		Health:   t.Health,
		Attack:   t.Attack,
	}
	return proto.Clone()
}

// MapLayout - заранее нарисованная карта
type MapLayout struct {
	Name    string
	Width   int
	Height  int
	Terrain []TerrainType // построчно, индекс = Y * Width + X
}

// Ruleset - вся статическая конфигурация партии. После сборки не меняется.
type Ruleset struct {
	TerrainTypes    map[string]TerrainType
	MovementTypes   map[string]MovementType
	ObjectTypes     map[string]ObjectType
	StackingClasses map[string]StackingClass

	Costs        *TerrainMovementCosts
	TileStacking TileStackingRules // шаблон счетчиков для каждого нового тайла
	Templates    map[string]ObjectTemplate
	Layouts      map[string]MapLayout

	Generator GeneratorRules
	Geometry  MapGeometry

	// Diagonal разрешает ходы по диагонали (8 соседей вместо 4)
	Diagonal bool
}

// TerrainWeight - вес местности при случайной генерации карты
type TerrainWeight struct {
	Terrain TerrainType
	Weight  int
}

// GeneratorRules - настройки генератора случайных карт
type GeneratorRules struct {
	Weights   []TerrainWeight
	Smoothing int // сколько проходов сглаживания после случайной заливки
}

func (r *Ruleset) Template(name string) (ObjectTemplate, error) {
	t, ok := r.Templates[name]
	if !ok {
		return ObjectTemplate{}, ConfigErrorf("unknown object template %q", name)
	}
	return t, nil
}

func (r *Ruleset) Layout(name string) (MapLayout, error) {
	l, ok := r.Layouts[name]
	if !ok {
		return MapLayout{}, ConfigErrorf("unknown map layout %q", name)
	}
	return l, nil
}

func (r *Ruleset) Terrain(name string) (TerrainType, error) {
	t, ok := r.TerrainTypes[name]
	if !ok {
		return TerrainType{}, ConfigErrorf("unknown terrain type %q", name)
	}
	return t, nil
}
