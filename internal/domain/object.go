package domain

// Object - объект на поле: неизменное "ядро" + набор необязательных компонентов.
// Системы спрашивают "есть ли у объекта X", а не смотрят на его тип.
type Object struct {
	// Идентификация
	ID       ObjectID   `json:"id"`
	Type     ObjectType `json:"type"`
	Template string     `json:"template,omitempty"`
	Owner    PlayerID   `json:"owner"`

	// Положение
	MapID    MapID         `json:"mapId"`
	Pos      TilePos       `json:"pos"`
	Stacking StackingClass `json:"stacking"`

	// Компоненты (nil - способности нет)
	Movement *MovementComponent `json:"movement,omitempty"`
	Health   *HealthComponent   `json:"health,omitempty"`
	Attack   *AttackComponent   `json:"attack,omitempty"`
}

func (o *Object) HasMovement() bool {
	return o.Movement != nil
}

func (o *Object) CanAttack() bool {
	return o.Attack != nil
}

// CanBeAttacked - есть здоровье, объект жив и не помечен как неатакуемый
func (o *Object) CanBeAttacked() bool {
	return o.Health != nil && !o.Health.NonAttackable && !o.Health.IsDead()
}

// Clone - глубокая копия изменяемых частей.
// Таблицы правил (карты внутри Terrain/TypeRules/PerType) - статический конфиг,
// их не копируем, а разделяем.
func (o *Object) Clone() *Object {
	c := *o
	if o.Movement != nil {
		m := *o.Movement
		c.Movement = &m
	}
	if o.Health != nil {
		h := *o.Health
		c.Health = &h
	}
	if o.Attack != nil {
		a := *o.Attack
		c.Attack = &a
	}
	return &c
}
