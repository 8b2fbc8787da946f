package agent

import (
	"context"
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine"
	"tactics-core/internal/network"
	"tactics-core/internal/systems"
	"tactics-core/pkg/api"
	"tactics-core/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// Bot - компьютерный игрок. Подписывается на события партии как обычный клиент
// и, когда ход переходит к нему, планирует действия по снапшоту и отправляет их в Runner.
type Bot struct {
	Player   domain.PlayerID
	MaxTurns int           // после этого номера хода бот перестает ходить (0 - без ограничения)
	Delay    time.Duration // пауза перед ходом, чтобы за партией можно было следить
	// PollInterval - как часто бот сам проверяет, чей ход (событие о передаче хода может потеряться)
	PollInterval time.Duration

	runner  *engine.Runner
	planner *Planner
	name    string
	inbox   <-chan network.Envelope
}

const defaultPollInterval = time.Second

// NewBot регистрирует бота в хабе. Вызывать до запуска Runner.
func NewBot(player domain.PlayerID, runner *engine.Runner, planner *Planner) *Bot {
	name := fmt.Sprintf("bot-%d", player)
	return &Bot{
		Player:       player,
		PollInterval: defaultPollInterval,
		runner:       runner,
		planner:      planner,
		name:         name,
		inbox:        runner.Game().Hub.Register(name),
	}
}

// Run слушает события до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	defer b.runner.Game().Hub.Unregister(b.name)

	botLogger := logger.Log.WithFields(logrus.Fields{"component": "bot", "player": b.Player})
	botLogger.Info("Bot started")

	// Партия могла начаться с нашего хода
	if err := b.takeTurn(ctx); err != nil {
		return err
	}

	interval := b.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	poll := time.NewTicker(interval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-poll.C:
			if err := b.takeTurn(ctx); err != nil {
				return err
			}
		case env, ok := <-b.inbox:
			if !ok {
				return nil
			}
			if env.Event.Type != domain.EventTurnEnded || env.Event.Player != b.Player {
				continue
			}
			if err := b.takeTurn(ctx); err != nil {
				return err
			}
		}
	}
}

// takeTurn ходит, если сейчас ход бота. Иначе ничего не делает.
func (b *Bot) takeTurn(ctx context.Context) error {
	var current domain.PlayerID
	if err := b.runner.Read(ctx, func(g *engine.Game) { current = g.CurrentPlayer() }); err != nil {
		return nil
	}
	if current != b.Player {
		return nil
	}

	if b.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(b.Delay):
		}
	}

	var (
		snap  *domain.GameState
		rules *domain.Ruleset
		calc  systems.MovementCalculator
	)
	err := b.runner.Read(ctx, func(g *engine.Game) {
		snap = g.Snapshot()
		rules = g.Rules()
		calc = g.Calculator()
	})
	if err != nil {
		return nil // ctx отменен
	}

	if snap.CurrentPlayer() != b.Player {
		return nil
	}
	if b.MaxTurns > 0 && snap.Turn.Number > b.MaxTurns {
		return nil
	}

	plan, err := b.planner.Plan(ctx, snap, rules, calc, b.Player)
	if err != nil {
		return fmt.Errorf("bot %d: plan: %w", b.Player, err)
	}

	botLogger := logger.Log.WithFields(logrus.Fields{"component": "bot", "player": b.Player, "turn": snap.Turn.Number})
	for _, req := range plan {
		resp, err := b.runner.Submit(ctx, req)
		if err != nil {
			return nil
		}
		// Отказ - нормально: план считался по снапшоту, соседи могли занять тайл
		if !resp.OK {
			botLogger.WithFields(logrus.Fields{"action": req.Action, "reason": resp.Error}).Debug("Intent rejected")
		}
	}

	resp, err := b.runner.Submit(ctx, api.IntentRequest{Action: domain.CommandEndTurn.String(), Player: uint8(b.Player)})
	if err != nil {
		return nil
	}
	if !resp.OK {
		return fmt.Errorf("bot %d: end turn: %s", b.Player, resp.Error)
	}
	return nil
}
