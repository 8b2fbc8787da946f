package domain

import "strings"

// CommandKind - Внутренний числовой идентификатор команды (и намерения игрока)
type CommandKind uint8

const (
	CommandUnknown CommandKind = iota
	CommandSpawnMap
	CommandDespawnMap
	CommandSpawnObject
	CommandDespawnObject
	CommandMoveObject
	CommandAttackObject
	CommandEndTurn
	// Не команды лога, а операции над ним. Нужны для разбора намерений.
	CommandRollback
	CommandRollforward
)

// Маппинг для конвертации JSON -> Domain
var commandStringToKind = map[string]CommandKind{
	"SPAWN_MAP":   CommandSpawnMap,
	"DESPAWN_MAP": CommandDespawnMap,
	"SPAWN":       CommandSpawnObject,
	"DESPAWN":     CommandDespawnObject,
	"MOVE":        CommandMoveObject,
	"ATTACK":      CommandAttackObject,
	"END_TURN":    CommandEndTurn,
	"ROLLBACK":    CommandRollback,
	"ROLLFORWARD": CommandRollforward,
}

// Маппинг для логов Domain -> String
var commandKindToString = map[CommandKind]string{
	CommandSpawnMap:      "SPAWN_MAP",
	CommandDespawnMap:    "DESPAWN_MAP",
	CommandSpawnObject:   "SPAWN",
	CommandDespawnObject: "DESPAWN",
	CommandMoveObject:    "MOVE",
	CommandAttackObject:  "ATTACK",
	CommandEndTurn:       "END_TURN",
	CommandRollback:      "ROLLBACK",
	CommandRollforward:   "ROLLFORWARD",
}

// ParseCommandKind конвертирует строку из JSON в CommandKind (без учета регистра)
func ParseCommandKind(s string) CommandKind {
	if val, ok := commandStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return CommandUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k CommandKind) String() string {
	if val, ok := commandKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText - в JSON команды пишем строкой
func (k CommandKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *CommandKind) UnmarshalText(data []byte) error {
	*k = ParseCommandKind(string(data))
	return nil
}

func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EventType) UnmarshalText(data []byte) error {
	*e = ParseEvent(string(data))
	return nil
}
