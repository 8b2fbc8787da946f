package domain

// Классификация объектов - три уровня: Class ⊃ Group ⊃ Type.
// Это не наследование, а обычные значения-ключи для правил:
// при поиске правила сначала смотрим Type, потом Group, потом Class.

// ObjectClass - самый общий уровень (Ground, Structure, Air)
type ObjectClass struct {
	Name string `json:"name"`
}

// ObjectGroup - группа внутри класса (Infantry, Vehicle)
type ObjectGroup struct {
	Name  string      `json:"name"`
	Class ObjectClass `json:"class"`
}

// ObjectType - конкретный тип (Rifleman, Tank, Bridge)
type ObjectType struct {
	Name  string      `json:"name"`
	Group ObjectGroup `json:"group"`
}

func (t ObjectType) Class() ObjectClass {
	return t.Group.Class
}

func (t ObjectType) String() string {
	return t.Group.Class.Name + "/" + t.Group.Name + "/" + t.Name
}

// TerrainClass - класс местности (Ground, Water)
type TerrainClass struct {
	Name string `json:"name"`
}

// TerrainType - тип местности. У каждого тайла ровно один TerrainType.
type TerrainType struct {
	Name  string       `json:"name"`
	Class TerrainClass `json:"class"`
}

func (t TerrainType) String() string {
	return t.Class.Name + "/" + t.Name
}

// MovementType - способ передвижения (Infantry, Tread). Определяет цену тайлов.
type MovementType struct {
	Name string `json:"name"`
}

// StackingClass - "слой" тайла, который занимает объект
type StackingClass struct {
	Name string `json:"name"`
}
