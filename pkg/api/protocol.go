package api

import (
	"encoding/json"
)

// --- ВНЕШНИЙ СЛОЙ -> ЯДРО ---

// IntentRequest - намерение игрока (или скрипта, или ИИ).
// Action - имя команды (MOVE, SPAWN, ROLLBACK, ...), Payload - её данные.
type IntentRequest struct {
	Action string `json:"action"`

	// Player - от чьего имени действие. 0 - системное действие без проверки прав.
	Player uint8 `json:"player,omitempty"`

	Payload json.RawMessage `json:"payload,omitempty"`
}

// Position - координата тайла
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SpawnPayload - поставить новый объект по шаблону
type SpawnPayload struct {
	Template string   `json:"template"`
	Owner    uint8    `json:"owner"`
	MapID    uint32   `json:"mapId"`
	Pos      Position `json:"pos"`
}

// MovePayload - переместить объект в тайл
type MovePayload struct {
	ObjectID uint64   `json:"objectId"`
	To       Position `json:"to"`
}

type DespawnPayload struct {
	ObjectID uint64 `json:"objectId"`
}

type AttackPayload struct {
	AttackerID uint64 `json:"attackerId"`
	TargetID   uint64 `json:"targetId"`
}

// MapPayload - создать карту: либо по имени готовой раскладки, либо случайную заданного размера
type MapPayload struct {
	Layout string `json:"layout,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type DespawnMapPayload struct {
	MapID uint32 `json:"mapId"`
}

// HistoryPayload - сколько шагов откатить/вернуть
type HistoryPayload struct {
	Count int `json:"count"`
}

// --- ЯДРО -> ВНЕШНИЙ СЛОЙ ---

// IntentResponse - результат обработки намерения.
// Отказ (недопустимый ход) - это OK=false и Error, а не падение.
type IntentResponse struct {
	Action  string `json:"action"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// EventMessage - одно событие ядра для подписчиков (отрисовка, логи)
type EventMessage struct {
	Type     string   `json:"type"` // всегда "EVENT"
	Seq      uint64   `json:"seq"`
	Event    string   `json:"event"`
	ObjectID uint64   `json:"objectId,omitempty"`
	TargetID uint64   `json:"targetId,omitempty"`
	MapID    uint32   `json:"mapId,omitempty"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Player   uint8    `json:"player,omitempty"`
	Command  string   `json:"command,omitempty"`
	Count    int      `json:"count,omitempty"`
	Amount   int      `json:"amount,omitempty"`
}

// StateSummary - краткая сводка партии (для /state и CLI)
type StateSummary struct {
	GameID        string `json:"gameId"`
	Turn          int    `json:"turn"`
	CurrentPlayer uint8  `json:"currentPlayer"`
	Maps          int    `json:"maps"`
	Objects       int    `json:"objects"`
	HistoryLength int    `json:"historyLength"`
	HistoryCursor int    `json:"historyCursor"`
}
