package actions

import (
	"fmt"
	"tactics-core/internal/engine/handlers"
	"tactics-core/pkg/api"
)

// HandleRollback откатывает последние команды. Больше, чем есть в истории, откатить нельзя - это не ошибка.
func HandleRollback(ctx handlers.Context, p api.HistoryPayload) (handlers.Result, error) {
	if res, ok := systemOnly(ctx); !ok {
		return res, nil
	}

	done, err := ctx.Game.Rollback(p.Count)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("Откачено команд: %d.", done), MsgType: handlers.MsgHistory, Data: done}, nil
}

func HandleRollforward(ctx handlers.Context, p api.HistoryPayload) (handlers.Result, error) {
	if res, ok := systemOnly(ctx); !ok {
		return res, nil
	}

	done, err := ctx.Game.Rollforward(p.Count)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("Возвращено команд: %d.", done), MsgType: handlers.MsgHistory, Data: done}, nil
}
