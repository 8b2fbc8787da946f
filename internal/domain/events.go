package domain

import "strings"

// EventType - Внутренний числовой идентификатор события
type EventType uint8

const (
	EventUnknown EventType = iota
	EventMoveComplete
	EventMapSpawned
	EventMapDespawned
	EventObjectSpawned
	EventObjectDespawned
	EventObjectAttacked
	EventObjectDestroyed
	EventObjectCaptured
	EventTurnEnded
	EventRolledBack
	EventRolledForward
)

// Маппинг для конвертации JSON -> Domain
var eventStringToType = map[string]EventType{
	"MOVE_COMPLETE":    EventMoveComplete,
	"MAP_SPAWNED":      EventMapSpawned,
	"MAP_DESPAWNED":    EventMapDespawned,
	"OBJECT_SPAWNED":   EventObjectSpawned,
	"OBJECT_DESPAWNED": EventObjectDespawned,
	"OBJECT_ATTACKED":  EventObjectAttacked,
	"OBJECT_DESTROYED": EventObjectDestroyed,
	"OBJECT_CAPTURED":  EventObjectCaptured,
	"TURN_ENDED":       EventTurnEnded,
	"ROLLED_BACK":      EventRolledBack,
	"ROLLED_FORWARD":   EventRolledForward,
}

// Маппинг для логов Domain -> String
var eventTypeToString = func() map[EventType]string {
	m := make(map[EventType]string, len(eventStringToType))
	for s, t := range eventStringToType {
		m[t] = s
	}
	return m
}()

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - уведомление для внешних слоев (отрисовка, звук, лог).
// Ядро не зависит от того, слушает ли его кто-нибудь.
type Event struct {
	Type     EventType   `json:"type"`
	ObjectID ObjectID    `json:"objectId,omitempty"`
	TargetID ObjectID    `json:"targetId,omitempty"`
	MapID    MapID       `json:"mapId,omitempty"`
	From     TilePos     `json:"from"`
	To       TilePos     `json:"to"`
	Player   PlayerID    `json:"player,omitempty"`
	Command  CommandKind `json:"command,omitempty"`
	Count    int         `json:"count,omitempty"`
	Amount   int         `json:"amount,omitempty"`
}
