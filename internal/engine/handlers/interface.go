package handlers

import (
	"encoding/json"
	"tactics-core/internal/domain"
	"tactics-core/internal/systems"
)

// Commands - то, что хендлеру разрешено делать с партией.
// engine.Game неявно реализует этот интерфейс.
type Commands interface {
	Object(id domain.ObjectID) (*domain.Object, error)
	CurrentPlayer() domain.PlayerID

	GenerateMap(width, height int) (domain.MapID, error)
	SpawnMapLayout(name string) (domain.MapID, error)
	DespawnMap(id domain.MapID) error

	SpawnObject(template string, owner domain.PlayerID, mapID domain.MapID, pos domain.TilePos) (domain.ObjectID, error)
	DespawnObject(id domain.ObjectID) error
	MoveObject(id domain.ObjectID, dest domain.TilePos) ([]domain.TilePos, error)
	AttackObject(attackerID, targetID domain.ObjectID) (systems.AttackOutcome, error)

	EndTurn() (domain.PlayerID, error)
	Rollback(n int) (int, error)
	Rollforward(n int) (int, error)
}

// Context передает хендлеру партию и того, кто действует.
type Context struct {
	Game  Commands
	Actor domain.PlayerID // domain.NoPlayer - системное действие (скрипт, админ), права не проверяются
}

// IsSystem - действие не от имени игрока
func (c Context) IsSystem() bool {
	return c.Actor == domain.NoPlayer
}

// Типы сообщений результата
const (
	MsgInfo    = "INFO"
	MsgCombat  = "COMBAT"
	MsgHistory = "HISTORY"
	MsgError   = "ERROR"
)

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст для игрока
	MsgType string // INFO, COMBAT, HISTORY, ERROR
	Data    any    // Что вернуть вызывающему (id объекта, путь, ...)
}

// Rejected - вежливый отказ: действие не выполнено, но это не сбой
func (r Result) Rejected() bool {
	return r.MsgType == MsgError
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - пустой ответ: проверка пройдена или наверх уходит ошибка
func EmptyResult() Result {
	return Result{}
}

// Reject - отказ с сообщением для игрока
func Reject(msg string) Result {
	return Result{Msg: msg, MsgType: MsgError}
}
