package domain

// MissingCostPolicy определяет, что делать, если в таблице цен нет пары
// (тип местности, тип передвижения).
type MissingCostPolicy uint8

const (
	// MissingCostImpassable - нет записи = тайл непроходим (по умолчанию)
	MissingCostImpassable MissingCostPolicy = iota
	// MissingCostDefault - нет записи = DefaultCost
	MissingCostDefault
)

// TerrainMovementCosts - цена входа в тайл: TerrainType -> MovementType -> cost
type TerrainMovementCosts struct {
	costs map[TerrainType]map[MovementType]int
	known map[MovementType]struct{}

	Missing     MissingCostPolicy
	DefaultCost int
}

func NewTerrainMovementCosts() *TerrainMovementCosts {
	return &TerrainMovementCosts{
		costs: make(map[TerrainType]map[MovementType]int),
		known: make(map[MovementType]struct{}),
	}
}

// Set задает цену. Отрицательная цена не имеет смысла, такие записи игнорируем
// на этапе сборки конфига, здесь же просто сохраняем.
func (c *TerrainMovementCosts) Set(terrain TerrainType, movement MovementType, cost int) {
	row, ok := c.costs[terrain]
	if !ok {
		row = make(map[MovementType]int)
		c.costs[terrain] = row
	}
	row[movement] = cost
	c.known[movement] = struct{}{}
}

// RegisterMovementType делает тип передвижения "известным" без единой цены
// (все тайлы для него будут решаться политикой Missing)
func (c *TerrainMovementCosts) RegisterMovementType(movement MovementType) {
	c.known[movement] = struct{}{}
}

// CostFor возвращает явно заданную цену
func (c *TerrainMovementCosts) CostFor(terrain TerrainType, movement MovementType) (int, bool) {
	row, ok := c.costs[terrain]
	if !ok {
		return 0, false
	}
	cost, ok := row[movement]
	return cost, ok
}

// Resolve возвращает цену с учетом политики для отсутствующих записей.
// passable=false значит "непроходимо".
func (c *TerrainMovementCosts) Resolve(terrain TerrainType, movement MovementType) (cost int, passable bool) {
	if cost, ok := c.CostFor(terrain, movement); ok {
		return cost, true
	}
	if c.Missing == MissingCostDefault {
		return c.DefaultCost, true
	}
	return 0, false
}

// Knows - встречался ли тип передвижения в таблице
func (c *TerrainMovementCosts) Knows(movement MovementType) bool {
	_, ok := c.known[movement]
	return ok
}

// ObjectTerrainMovementRules - по какой местности может ходить объект.
// Правило на TerrainType сильнее списка классов: {Ground} + {Mountain: false}
// значит "вся суша кроме гор". Отсутствие записи = нельзя.
type ObjectTerrainMovementRules struct {
	Classes map[TerrainClass]struct{}
	Types   map[TerrainType]bool
}

func NewObjectTerrainMovementRules(classes []TerrainClass, types map[TerrainType]bool) ObjectTerrainMovementRules {
	r := ObjectTerrainMovementRules{
		Classes: make(map[TerrainClass]struct{}, len(classes)),
		Types:   make(map[TerrainType]bool, len(types)),
	}
	for _, c := range classes {
		r.Classes[c] = struct{}{}
	}
	for t, allowed := range types {
		r.Types[t] = allowed
	}
	return r
}

// Allows проверяет, можно ли объекту стоять на местности данного типа
func (r ObjectTerrainMovementRules) Allows(terrain TerrainType) bool {
	if allowed, ok := r.Types[terrain]; ok {
		return allowed
	}
	_, ok := r.Classes[terrain.Class]
	return ok
}

// ObjectTypeMovementRules - можно ли войти в тайл, занятый объектом другого типа.
// Поиск идет от частного к общему: Type -> Group -> Class.
type ObjectTypeMovementRules struct {
	Types   map[ObjectType]bool
	Groups  map[ObjectGroup]bool
	Classes map[ObjectClass]bool
}

func NewObjectTypeMovementRules() *ObjectTypeMovementRules {
	return &ObjectTypeMovementRules{
		Types:   make(map[ObjectType]bool),
		Groups:  make(map[ObjectGroup]bool),
		Classes: make(map[ObjectClass]bool),
	}
}

// Allows возвращает (решение, есть ли правило вообще).
// ok=false - у правил нет мнения об этом типе, решают другие проверки.
func (r *ObjectTypeMovementRules) Allows(occupant ObjectType) (allowed bool, ok bool) {
	if r == nil {
		return false, false
	}
	if v, found := r.Types[occupant]; found {
		return v, true
	}
	if v, found := r.Groups[occupant.Group]; found {
		return v, true
	}
	if v, found := r.Classes[occupant.Group.Class]; found {
		return v, true
	}
	return false, false
}

func (r *ObjectTypeMovementRules) Empty() bool {
	return r == nil || len(r.Types)+len(r.Groups)+len(r.Classes) == 0
}
