package engine

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
	"tactics-core/internal/engine/handlers/actions"
	"tactics-core/pkg/api"

	"github.com/sirupsen/logrus"
)

func (g *Game) registerHandlers() {
	g.handlers[domain.CommandSpawnMap] = handlers.WithPayload(actions.HandleSpawnMap)
	g.handlers[domain.CommandDespawnMap] = handlers.WithPayload(actions.HandleDespawnMap)
	g.handlers[domain.CommandSpawnObject] = handlers.WithPayload(actions.HandleSpawn)
	g.handlers[domain.CommandDespawnObject] = handlers.WithPayload(actions.HandleDespawn)
	g.handlers[domain.CommandMoveObject] = handlers.WithPayload(actions.HandleMove)
	g.handlers[domain.CommandAttackObject] = handlers.WithPayload(actions.HandleAttack)
	g.handlers[domain.CommandEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	g.handlers[domain.CommandRollback] = handlers.WithPayload(actions.HandleRollback)
	g.handlers[domain.CommandRollforward] = handlers.WithPayload(actions.HandleRollforward)
}

// ProcessIntent разбирает внешнее намерение и выполняет его.
// Отказ по правилам игры - это OK=false с текстом, а не ошибка.
func (g *Game) ProcessIntent(req api.IntentRequest) api.IntentResponse {
	resp := api.IntentResponse{Action: req.Action}

	kind := domain.ParseCommandKind(req.Action)
	handler, ok := g.handlers[kind]
	if !ok {
		resp.Error = fmt.Errorf("%w: %q", domain.ErrUnknownIntent, req.Action).Error()
		return resp
	}

	ctx := handlers.Context{Game: g, Actor: domain.PlayerID(req.Player)}
	res, err := handler(ctx, req.Payload)

	intentLogger := g.gameLogger(kind.String()).WithFields(logrus.Fields{"player": req.Player})
	if err != nil {
		intentLogger.WithError(err).Warn("Intent failed")
		resp.Error = err.Error()
		return resp
	}
	if res.Rejected() {
		intentLogger.WithField("reason", res.Msg).Debug("Intent rejected")
		resp.Error = res.Msg
		return resp
	}

	resp.OK = true
	resp.Message = res.Msg
	resp.Data = res.Data
	return resp
}
