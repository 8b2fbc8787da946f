package main

import (
	"context"
	"tactics-core/internal/agent"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine"
	"tactics-core/internal/server"
	"tactics-core/pkg/logger"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "let bots play a generated map and stream events over websocket",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Sources: cli.EnvVars("TACTICS_ADDR")},
			&cli.DurationFlag{Name: "turn-delay", Value: 500 * time.Millisecond, Usage: "pause before each bot turn"},
			&cli.IntFlag{Name: "turns", Value: 20, Usage: "stop after this many turns (0 = run until interrupted)"},
			&cli.IntFlag{Name: "width", Value: 16},
			&cli.IntFlag{Name: "height", Value: 10},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	g, err := newGame(cmd)
	if err != nil {
		return err
	}

	mapID, err := g.GenerateMap(cmd.Int("width"), cmd.Int("height"))
	if err != nil {
		return err
	}
	for i, p := range g.Players() {
		placed := deployArmy(g, mapID, p.ID, i, []string{"rifleman", "rifleman", "light_tank"})
		logger.Log.WithField("player", p.ID).Infof("Deployed %d units", placed)
	}

	turns := cmd.Int("turns")
	runner := engine.NewRunner(g, 0)
	planner := agent.NewPlanner(g.Workers())

	bots := make([]*agent.Bot, 0, len(g.Players()))
	for _, p := range g.Players() {
		bot := agent.NewBot(p.ID, runner, planner)
		bot.MaxTurns = turns
		bot.Delay = cmd.Duration("turn-delay")
		bots = append(bots, bot)
	}
	// Подписываемся до запуска Runner, чтобы не пропустить ни одного события
	watch := g.Hub.Register("serve-watch")
	defer g.Hub.Unregister("serve-watch")
	srv := server.New(runner, cmd.String("addr"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return runner.Run(gctx) })
	eg.Go(func() error { return srv.Run(gctx) })
	for _, bot := range bots {
		eg.Go(func() error { return bot.Run(gctx) })
	}
	eg.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case env, ok := <-watch:
				if !ok {
					return nil
				}
				if env.Event.Type == domain.EventTurnEnded && turns > 0 && env.Event.Count > turns {
					logger.Log.Infof("Turn limit %d reached", turns)
					cancel()
					return nil
				}
			}
		}
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	printSummary(g)
	return nil
}

// deployArmy ставит отряд игрока в своей полосе карты: нечетные игроки слева, четные справа.
// Занятые и неподходящие тайлы пропускаются.
func deployArmy(g *engine.Game, mapID domain.MapID, player domain.PlayerID, index int, templates []string) int {
	m, err := g.Map(mapID)
	if err != nil {
		return 0
	}

	placed := 0
	for x := 0; x < m.Width && placed < len(templates); x++ {
		col := x
		if index%2 == 1 {
			col = m.Width - 1 - x
		}
		for y := 0; y < m.Height && placed < len(templates); y++ {
			pos := domain.TilePos{X: col, Y: y}
			if _, err := g.SpawnObject(templates[placed], player, mapID, pos); err != nil {
				continue
			}
			placed++
		}
	}
	if placed < len(templates) {
		logger.Log.Warnf("player %d: only %d of %d units fit on the map", player, placed, len(templates))
	}
	return placed
}
