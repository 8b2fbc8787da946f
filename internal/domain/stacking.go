package domain

import "fmt"

// StackCount - сколько объектов класса стоит в тайле и сколько может стоять
type StackCount struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// TileStackingRules - счетчики стека тайла по классам.
// Инвариант: Current <= Max после любой успешной операции.
// Класса нет в мапе = в этом тайле для него места нет.
type TileStackingRules map[StackingClass]StackCount

// NewTileStackingRules создает пустые счетчики с заданными лимитами
func NewTileStackingRules(limits map[StackingClass]int) TileStackingRules {
	r := make(TileStackingRules, len(limits))
	for class, limit := range limits {
		r[class] = StackCount{Max: limit}
	}
	return r
}

func (r TileStackingRules) HasSpace(class StackingClass) bool {
	c, ok := r[class]
	return ok && c.Current < c.Max
}

// Increment занимает место. Без места - ErrNoSpace, счетчик не меняется.
func (r TileStackingRules) Increment(class StackingClass) error {
	if !r.HasSpace(class) {
		return fmt.Errorf("%w: %s", ErrNoSpace, class.Name)
	}
	c := r[class]
	c.Current++
	r[class] = c
	return nil
}

// Decrement освобождает место. Уход ниже нуля - ошибка учета, а не нормальный путь.
func (r TileStackingRules) Decrement(class StackingClass) error {
	c, ok := r[class]
	if !ok || c.Current == 0 {
		return fmt.Errorf("stacking underflow for class %q", class.Name)
	}
	c.Current--
	r[class] = c
	return nil
}

func (r TileStackingRules) Clone() TileStackingRules {
	out := make(TileStackingRules, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
