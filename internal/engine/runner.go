package engine

import (
	"context"
	"tactics-core/pkg/api"
	"tactics-core/pkg/logger"
)

type intentCall struct {
	req   api.IntentRequest
	reply chan api.IntentResponse
}

type readCall struct {
	fn   func(g *Game)
	done chan struct{}
}

// Runner - цикл единственного писателя. Game не потокобезопасен, поэтому
// все намерения и чтения из других горутин (сервер, боты) идут через каналы Runner.
type Runner struct {
	game    *Game
	intents chan intentCall
	reads   chan readCall
}

func NewRunner(g *Game, buffer int) *Runner {
	if buffer <= 0 {
		buffer = 100
	}
	return &Runner{
		game:    g,
		intents: make(chan intentCall, buffer),
		reads:   make(chan readCall, buffer),
	}
}

// Game - прямой доступ. Только до Run или из fn внутри Read.
func (r *Runner) Game() *Game {
	return r.game
}

// Run обрабатывает намерения до отмены ctx
func (r *Runner) Run(ctx context.Context) error {
	logger.Log.WithField("game_id", r.game.cfg.GameID).Info("Runner loop started")
	defer logger.Log.Info("Runner loop stopped")

	for {
		select {
		case <-ctx.Done():
			return nil

		case call := <-r.intents:
			call.reply <- r.game.ProcessIntent(call.req)

		case rc := <-r.reads:
			rc.fn(r.game)
			close(rc.done)
		}
	}
}

// Submit отправляет намерение в цикл и ждет ответ
func (r *Runner) Submit(ctx context.Context, req api.IntentRequest) (api.IntentResponse, error) {
	call := intentCall{req: req, reply: make(chan api.IntentResponse, 1)}

	select {
	case r.intents <- call:
	case <-ctx.Done():
		return api.IntentResponse{}, ctx.Err()
	}

	select {
	case resp := <-call.reply:
		return resp, nil
	case <-ctx.Done():
		return api.IntentResponse{}, ctx.Err()
	}
}

// Read выполняет fn внутри цикла. fn не должна сохранять ссылки на внутренности Game.
func (r *Runner) Read(ctx context.Context, fn func(g *Game)) error {
	rc := readCall{fn: fn, done: make(chan struct{})}

	select {
	case r.reads <- rc:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-rc.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
