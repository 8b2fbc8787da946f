package actions

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
	"tactics-core/pkg/api"
)

func HandleSpawn(ctx handlers.Context, p api.SpawnPayload) (handlers.Result, error) {
	if res, ok := systemOnly(ctx); !ok {
		return res, nil
	}

	pos := domain.TilePos{X: p.Pos.X, Y: p.Pos.Y}
	id, err := ctx.Game.SpawnObject(p.Template, domain.PlayerID(p.Owner), domain.MapID(p.MapID), pos)
	if err != nil {
		return refuse(err)
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s (%s) появился в %s.", id, p.Template, pos),
		MsgType: handlers.MsgInfo,
		Data:    uint64(id),
	}, nil
}

func HandleDespawn(ctx handlers.Context, p api.DespawnPayload) (handlers.Result, error) {
	if res, ok := systemOnly(ctx); !ok {
		return res, nil
	}

	id := domain.ObjectID(p.ObjectID)
	if err := ctx.Game.DespawnObject(id); err != nil {
		return refuse(err)
	}
	return handlers.Result{Msg: fmt.Sprintf("%s удален.", id), MsgType: handlers.MsgInfo}, nil
}
