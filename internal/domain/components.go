package domain

// --- КОМПОНЕНТЫ (capabilities) ---
// Если у объекта компонент nil - значит способности нет.

// MovementComponent - профиль передвижения
type MovementComponent struct {
	MovePoints int          `json:"movePoints"`
	Type       MovementType `json:"type"`

	// Terrain - по какой местности можно ходить
	Terrain ObjectTerrainMovementRules `json:"-"`
	// TypeRules - в тайлы с какими объектами можно входить (может быть nil)
	TypeRules *ObjectTypeMovementRules `json:"-"`
}

// OnDeath - что происходит с объектом при гибели
type OnDeath uint8

const (
	// OnDeathDestroy - объект убирается с поля
	OnDeathDestroy OnDeath = iota
	// OnDeathCapture - объект переходит к атакующему и восстанавливает здоровье
	OnDeathCapture
)

// HealthComponent - без него объект нельзя атаковать
type HealthComponent struct {
	Current   int     `json:"current"`
	Max       int     `json:"max"`
	OnDeath   OnDeath `json:"onDeath"`
	RestoreAt int     `json:"restoreAt,omitempty"` // для OnDeathCapture

	NonAttackable bool `json:"nonAttackable,omitempty"` // нельзя выбрать целью
	Invulnerable  bool `json:"invulnerable,omitempty"`  // можно атаковать, но урона нет
}

// AttackComponent - сила атаки. Если для типа противника нет записи, берется Default.
// Пустая таблица = "универсальная" атака с одним значением.
type AttackComponent struct {
	PerType map[ObjectType]int `json:"-"`
	Default int                `json:"default"`
	Range   int                `json:"range"`
}
