package actions

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
	"tactics-core/pkg/api"
)

// HandleSpawnMap создает карту по раскладке или случайную
func HandleSpawnMap(ctx handlers.Context, p api.MapPayload) (handlers.Result, error) {
	if res, ok := systemOnly(ctx); !ok {
		return res, nil
	}

	var (
		id  domain.MapID
		err error
	)
	if p.Layout != "" {
		id, err = ctx.Game.SpawnMapLayout(p.Layout)
	} else {
		id, err = ctx.Game.GenerateMap(p.Width, p.Height)
	}
	if err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{Msg: fmt.Sprintf("Создана карта %s.", id), MsgType: handlers.MsgInfo, Data: uint32(id)}, nil
}

func HandleDespawnMap(ctx handlers.Context, p api.DespawnMapPayload) (handlers.Result, error) {
	if res, ok := systemOnly(ctx); !ok {
		return res, nil
	}

	id := domain.MapID(p.MapID)
	if err := ctx.Game.DespawnMap(id); err != nil {
		return handlers.Reject(err.Error()), nil
	}
	return handlers.Result{Msg: fmt.Sprintf("Карта %s удалена.", id), MsgType: handlers.MsgInfo}, nil
}
