package main

import (
	"context"
	"fmt"
	"strings"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine"

	"github.com/urfave/cli/v3"
)

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "build the river scenario and walk through moves, combat and history",
		Action: runDemo,
	}
}

func runDemo(_ context.Context, cmd *cli.Command) error {
	g, err := newGame(cmd)
	if err != nil {
		return err
	}

	mapID, err := g.SpawnMapLayout("river")
	if err != nil {
		return err
	}
	if _, err := g.SpawnObject("bridge", domain.NoPlayer, mapID, domain.TilePos{X: 5, Y: 2}); err != nil {
		return err
	}
	rifleman, err := g.SpawnObject("rifleman", 1, mapID, domain.TilePos{X: 3, Y: 2})
	if err != nil {
		return err
	}
	tank, err := g.SpawnObject("light_tank", 2, mapID, domain.TilePos{X: 8, Y: 2})
	if err != nil {
		return err
	}

	if err := printMap(g, mapID); err != nil {
		return err
	}
	if err := printMoves(g, rifleman); err != nil {
		return err
	}

	path, err := g.MoveObject(rifleman, domain.TilePos{X: 6, Y: 2})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "rifleman crossed the bridge: %v\n", path)

	// Тайл занят - ход отклоняется и в лог не попадает
	if _, err := g.MoveObject(tank, domain.TilePos{X: 6, Y: 2}); err != nil {
		fmt.Fprintf(out, "tank move rejected: %v\n", err)
	}

	if _, err := g.EndTurn(); err != nil {
		return err
	}
	if _, err := g.MoveObject(tank, domain.TilePos{X: 7, Y: 2}); err != nil {
		return err
	}
	outcome, err := g.AttackObject(tank, rifleman)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "tank attacks rifleman: damage=%d destroyed=%t\n", outcome.Damage, outcome.Destroyed)

	printSummary(g)

	undone, err := g.Rollback(10)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "rollback(10) undid %d commands\n", undone)
	printSummary(g)

	redone, err := g.Rollforward(3)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "rollforward(3) redid %d commands\n", redone)
	printSummary(g)
	return nil
}

func printMap(g *engine.Game, mapID domain.MapID) error {
	m, err := g.Map(mapID)
	if err != nil {
		return err
	}
	// Y растет вверх, поэтому печатаем сверху вниз
	for y := m.Height - 1; y >= 0; y-- {
		var row strings.Builder
		for x := 0; x < m.Width; x++ {
			pos := domain.TilePos{X: x, Y: y}
			if objs := g.ObjectsAt(mapID, pos); len(objs) > 0 {
				row.WriteByte(objs[len(objs)-1].Type.Name[0])
				continue
			}
			row.WriteString(terrainGlyph(m.Tile(pos).Terrain))
		}
		fmt.Fprintln(out, row.String())
	}
	return nil
}

func terrainGlyph(t domain.TerrainType) string {
	switch t.Name {
	case "Forest":
		return "♣"
	case "Mountain":
		return "^"
	case "Hill":
		return "n"
	case "Sand":
		return ":"
	}
	if t.Class.Name == "Water" {
		return "~"
	}
	return "."
}

func printMoves(g *engine.Game, id domain.ObjectID) error {
	moves, err := g.AvailableMoves(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s can reach %d tiles from %s:\n", id, len(moves.Destinations()), moves.Origin)
	for _, mv := range moves.Destinations() {
		fmt.Fprintf(out, "  %s cost=%d via %s\n", mv.Pos, mv.Cost, mv.Prior)
	}
	return nil
}

func printSummary(g *engine.Game) {
	s := g.Summary()
	fmt.Fprintf(out, "turn=%d player=%d objects=%d history=%d/%d\n",
		s.Turn, s.CurrentPlayer, s.Objects, s.HistoryCursor, s.HistoryLength)
}
