package actions

import (
	"fmt"
	"tactics-core/internal/engine/handlers"
)

func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	if res, ok := checkTurn(ctx); !ok {
		return res, nil
	}

	next, err := ctx.Game.EndTurn()
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Msg: fmt.Sprintf("Ход переходит к игроку %d.", next), MsgType: handlers.MsgInfo, Data: uint8(next)}, nil
}
