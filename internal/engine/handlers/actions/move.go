package actions

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
	"tactics-core/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	id := domain.ObjectID(p.ObjectID)
	if res, ok := checkOwner(ctx, id); !ok {
		return res, nil
	}

	dest := domain.TilePos{X: p.To.X, Y: p.To.Y}
	path, err := ctx.Game.MoveObject(id, dest)
	if err != nil {
		return refuse(err)
	}

	out := make([]api.Position, len(path))
	for i, pos := range path {
		out[i] = api.Position{X: pos.X, Y: pos.Y}
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s переместился в %s.", id, dest),
		MsgType: handlers.MsgInfo,
		Data:    out,
	}, nil
}
