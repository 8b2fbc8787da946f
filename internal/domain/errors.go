package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration - отсутствующее или битое правило/шаблон. Повтор не поможет.
	ErrConfiguration = errors.New("configuration error")

	// ErrIllegalMove - ход невозможен: тайл недостижим, запрещен правилами или переполнен.
	// Это штатный отрицательный результат, а не авария.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoSpace - в тайле нет места для класса стека объекта
	ErrNoSpace = errors.New("no space in tile for stacking class")

	ErrObjectNotFound = errors.New("object not found")
	ErrMapNotFound    = errors.New("map not found")
	ErrOutOfBounds    = errors.New("position out of map bounds")
	ErrIllegalAttack  = errors.New("illegal attack")
	ErrUnknownIntent  = errors.New("unknown intent")
)

// ConfigErrorf оборачивает сообщение в ErrConfiguration
func ConfigErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// IllegalMovef оборачивает сообщение в ErrIllegalMove
func IllegalMovef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}
