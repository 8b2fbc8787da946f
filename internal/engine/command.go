package engine

import "tactics-core/internal/domain"

// Command - атомарное изменение состояния, которое умеет себя отменить.
// Все данные для применения и отмены фиксируются при создании, после этого команда не меняется.
//
// Execute и Rollback обязаны быть атомарными: при ошибке состояние остается прежним.
type Command interface {
	Kind() domain.CommandKind
	Execute(s *domain.GameState) error
	Rollback(s *domain.GameState) error

	// Events - уведомления о применении (forward=true) или отмене (forward=false)
	Events(forward bool) []domain.Event
}

// CommandStatus - жизненный цикл команды в логе
type CommandStatus uint8

const (
	StatusPending CommandStatus = iota
	StatusExecuted
	StatusRolledBack
)

func (s CommandStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusExecuted:
		return "EXECUTED"
	case StatusRolledBack:
		return "ROLLED_BACK"
	}
	return "UNKNOWN"
}

func (s CommandStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
