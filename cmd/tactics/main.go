package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"tactics-core/internal/config"
	"tactics-core/internal/engine"
	"tactics-core/pkg/logger"

	"github.com/urfave/cli/v3"
)

// Куда печатают команды CLI (логи идут в stderr)
var out io.Writer = os.Stdout

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		logger.Log.WithError(err).Error("tactics failed")
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "tactics",
		Usage: "turn-based grid tactics core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rules", Value: "configs/tactics.yaml", Usage: "path to the YAML rules file (defaults are used if it does not exist)"},
			&cli.Int64Flag{Name: "seed", Usage: "master seed (0 = random)"},
			&cli.StringFlag{Name: "log-level", Value: "info", Sources: cli.EnvVars("LOG_LEVEL")},
			&cli.BoolFlag{Name: "diagonal", Usage: "allow diagonal movement"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.InitWithOutput(os.Stderr, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			demoCommand(),
			playCommand(),
			serveCommand(),
		},
	}
}

// newGame собирает правила и партию по глобальным флагам
func newGame(cmd *cli.Command) (*engine.Game, error) {
	rules, err := config.LoadRules(cmd.String("rules"))
	if err != nil {
		return nil, err
	}
	if cmd.Bool("diagonal") {
		rules.Diagonal = true
	}
	rs, err := rules.Build()
	if err != nil {
		return nil, fmt.Errorf("building rules: %w", err)
	}

	cfg := engine.NewConfig()
	if seed := cmd.Int64("seed"); seed != 0 {
		cfg.Seed = seed
	}
	logger.Log.Infof("Using master seed %d", cfg.Seed)
	return engine.NewGame(cfg, rs), nil
}
