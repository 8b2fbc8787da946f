package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"tactics-core/pkg/api"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// scriptStep - одно намерение в YAML-сценарии
type scriptStep struct {
	Action  string         `yaml:"action"`
	Player  uint8          `yaml:"player"`
	Payload map[string]any `yaml:"payload"`
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "run a YAML script of intents and print every response",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "script", Required: true, Usage: "path to the YAML script"},
		},
		Action: runPlay,
	}
}

func loadScript(path string) ([]scriptStep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	var steps []scriptStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return steps, nil
}

func runPlay(_ context.Context, cmd *cli.Command) error {
	steps, err := loadScript(cmd.String("script"))
	if err != nil {
		return err
	}
	g, err := newGame(cmd)
	if err != nil {
		return err
	}

	for i, step := range steps {
		req := api.IntentRequest{Action: step.Action, Player: step.Player}
		if step.Payload != nil {
			raw, err := json.Marshal(step.Payload)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			req.Payload = raw
		}

		resp := g.ProcessIntent(req)
		line, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%3d %s\n", i+1, line)
	}

	printSummary(g)
	return nil
}
