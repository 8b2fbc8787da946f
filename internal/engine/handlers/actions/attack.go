package actions

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
	"tactics-core/pkg/api"
)

func HandleAttack(ctx handlers.Context, p api.AttackPayload) (handlers.Result, error) {
	attacker := domain.ObjectID(p.AttackerID)
	if res, ok := checkOwner(ctx, attacker); !ok {
		return res, nil
	}

	outcome, err := ctx.Game.AttackObject(attacker, domain.ObjectID(p.TargetID))
	if err != nil {
		return refuse(err)
	}

	msg := fmt.Sprintf("%s наносит %d урона.", attacker, outcome.Damage)
	switch {
	case outcome.Destroyed:
		msg += " Цель уничтожена."
	case outcome.Captured:
		msg += " Цель захвачена."
	}
	return handlers.Result{Msg: msg, MsgType: handlers.MsgCombat, Data: outcome.Damage}, nil
}
