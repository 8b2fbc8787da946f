package actions

import (
	"errors"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
)

// refuse превращает игровой отказ (недопустимый ход, нет места, ...) в ответ игроку.
// Остальные ошибки (конфиг, порча состояния) пробрасываются наверх.
func refuse(err error) (handlers.Result, error) {
	switch {
	case errors.Is(err, domain.ErrIllegalMove),
		errors.Is(err, domain.ErrNoSpace),
		errors.Is(err, domain.ErrIllegalAttack),
		errors.Is(err, domain.ErrObjectNotFound),
		errors.Is(err, domain.ErrMapNotFound),
		errors.Is(err, domain.ErrOutOfBounds):
		return handlers.Reject(err.Error()), nil
	}
	return handlers.EmptyResult(), err
}

// checkTurn - игрок действует только в свой ход
func checkTurn(ctx handlers.Context) (handlers.Result, bool) {
	if ctx.IsSystem() || ctx.Game.CurrentPlayer() == ctx.Actor {
		return handlers.EmptyResult(), true
	}
	return handlers.Reject("Сейчас не ваш ход."), false
}

// checkOwner - игрок командует только своими объектами
func checkOwner(ctx handlers.Context, id domain.ObjectID) (handlers.Result, bool) {
	if res, ok := checkTurn(ctx); !ok {
		return res, false
	}
	if ctx.IsSystem() {
		return handlers.EmptyResult(), true
	}

	obj, err := ctx.Game.Object(id)
	if err != nil {
		return handlers.Reject(err.Error()), false
	}
	if obj.Owner != ctx.Actor {
		return handlers.Reject("Это не ваш объект."), false
	}
	return handlers.EmptyResult(), true
}

// systemOnly - действия, которые игроку недоступны (спавн, карты)
func systemOnly(ctx handlers.Context) (handlers.Result, bool) {
	if ctx.IsSystem() {
		return handlers.EmptyResult(), true
	}
	return handlers.Reject("Действие доступно только администратору."), false
}
