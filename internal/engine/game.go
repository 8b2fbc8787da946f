package engine

import (
	"fmt"
	"math/rand"
	"slices"
	"tactics-core/internal/domain"
	"tactics-core/internal/engine/handlers"
	"tactics-core/internal/network"
	"tactics-core/internal/systems"
	"tactics-core/pkg/logger"
	"tactics-core/pkg/mapgen"

	"github.com/sirupsen/logrus"
)

// Game - единственная точка входа для изменения состояния партии.
// Каждое намерение превращается в команду, проверяется по правилам движения и стека
// и только потом уходит в лог команд. Другого пути изменить состояние нет,
// поэтому откат всегда корректен.
//
// Game не потокобезопасен: им пользуется один писатель (см. Runner).
type Game struct {
	cfg     Config
	rules   *domain.Ruleset
	state   *domain.GameState
	history *CommandLog
	calc    systems.MovementCalculator

	Hub *network.Broadcaster

	objectIDs *domain.IDProvider
	mapIDs    *domain.IDProvider
	rng       *rand.Rand

	handlers map[domain.CommandKind]handlers.HandlerFunc
}

func NewGame(cfg Config, rules *domain.Ruleset) *Game {
	g := &Game{
		cfg:       cfg,
		rules:     rules,
		state:     domain.NewGameState(cfg.GameID, cfg.Players),
		history:   NewCommandLog(),
		calc:      systems.NewSquareMovementCalculator(rules.Diagonal),
		Hub:       network.NewBroadcaster(cfg.HubBuffer),
		objectIDs: domain.NewIDProvider(0),
		mapIDs:    domain.NewIDProvider(0),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		handlers:  make(map[domain.CommandKind]handlers.HandlerFunc),
	}

	g.history.SetObserver(func(e *LogEntry, forward bool) {
		g.Hub.Publish(e.Command.Events(forward)...)
	})
	g.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"game_id": cfg.GameID,
		"seed":    cfg.Seed,
		"players": len(cfg.Players),
	}).Info("Game created")
	return g
}

// SetMovementCalculator подменяет алгоритм расчета ходов (например, гексы)
func (g *Game) SetMovementCalculator(c systems.MovementCalculator) {
	g.calc = c
}

func (g *Game) gameLogger(intent string) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"intent":    intent,
	})
}

// execute - единственное место, где команды попадают в лог
func (g *Game) execute(cmd Command) error {
	if _, err := g.history.Execute(g.state, cmd); err != nil {
		g.gameLogger(cmd.Kind().String()).WithError(err).Warn("Command failed to apply")
		return err
	}
	return nil
}

// --- КАРТЫ ---

// GenerateMap создает случайную карту по весам местности из правил.
// Местность считается здесь, а не в команде: rollforward вернет ту же карту.
func (g *Game) GenerateMap(width, height int) (domain.MapID, error) {
	terrain, err := mapgen.Generate(mapgen.Config{
		Width:     width,
		Height:    height,
		Weights:   g.rules.Generator.Weights,
		Smoothing: g.rules.Generator.Smoothing,
	}, g.rng)
	if err != nil {
		return 0, err
	}
	return g.spawnMap(width, height, terrain)
}

// SpawnMapLayout создает карту по готовой раскладке из правил
func (g *Game) SpawnMapLayout(name string) (domain.MapID, error) {
	layout, err := g.rules.Layout(name)
	if err != nil {
		return 0, err
	}
	return g.spawnMap(layout.Width, layout.Height, layout.Terrain)
}

func (g *Game) spawnMap(width, height int, terrain []domain.TerrainType) (domain.MapID, error) {
	id := domain.MapID(g.mapIDs.Next())
	m, err := domain.NewGameMap(id, width, height, terrain, g.rules.TileStacking)
	if err != nil {
		return 0, err
	}
	m.Geometry = g.rules.Geometry

	if err := g.execute(&SpawnMap{Map: m}); err != nil {
		return 0, err
	}
	g.gameLogger("SPAWN_MAP").WithFields(logrus.Fields{
		"map_id": id,
		"width":  width,
		"height": height,
	}).Info("Map spawned")
	return id, nil
}

// DespawnMap удаляет карту. Сначала нужно убрать с нее все объекты.
func (g *Game) DespawnMap(id domain.MapID) error {
	m, err := g.state.Map(id)
	if err != nil {
		return err
	}
	if !m.IsEmpty() {
		return fmt.Errorf("despawn %s: map still has objects", id)
	}
	return g.execute(&DespawnMap{Map: m.Clone()})
}

// --- ОБЪЕКТЫ ---

// SpawnObject ставит объект по шаблону. Нет места в стеке или местность запрещена - отказ.
func (g *Game) SpawnObject(template string, owner domain.PlayerID, mapID domain.MapID, pos domain.TilePos) (domain.ObjectID, error) {
	tpl, err := g.rules.Template(template)
	if err != nil {
		return 0, err
	}
	if owner != domain.NoPlayer && !g.hasPlayer(owner) {
		return 0, domain.ConfigErrorf("unknown player %d", owner)
	}

	m, err := g.state.Map(mapID)
	if err != nil {
		return 0, err
	}
	tile := m.Tile(pos)
	if tile == nil {
		return 0, fmt.Errorf("spawn %s: %w: %s", template, domain.ErrOutOfBounds, pos)
	}
	if tpl.Movement != nil && !tpl.Movement.Terrain.Allows(tile.Terrain) {
		return 0, domain.IllegalMovef("%s cannot stand on %s", template, tile.Terrain.Name)
	}
	if !tile.Stacking.HasSpace(tpl.Stacking) {
		return 0, fmt.Errorf("spawn %s at %s: %w", template, pos, domain.ErrNoSpace)
	}

	id := domain.ObjectID(g.objectIDs.Next())
	obj := tpl.Instantiate(id, owner, mapID, pos)
	if err := g.execute(&SpawnObject{Object: obj}); err != nil {
		return 0, err
	}

	g.gameLogger("SPAWN").WithFields(logrus.Fields{
		"object_id": id,
		"template":  template,
		"pos":       pos,
	}).Debug("Object spawned")
	return id, nil
}

func (g *Game) DespawnObject(id domain.ObjectID) error {
	obj, err := g.state.Object(id)
	if err != nil {
		return err
	}
	m, err := g.state.Map(obj.MapID)
	if err != nil {
		return err
	}
	return g.execute(&DespawnObject{Object: obj.Clone(), Index: m.IndexOf(obj)})
}

// MoveObject перемещает объект в dest, если тот достижим и в нем есть место.
// Возвращает путь (от текущей позиции до dest включительно).
// Отказ - ошибка, оборачивающая domain.ErrIllegalMove; лог при этом не меняется.
func (g *Game) MoveObject(id domain.ObjectID, dest domain.TilePos) ([]domain.TilePos, error) {
	obj, err := g.state.Object(id)
	if err != nil {
		return nil, err
	}
	moves, err := g.calc.CalculateMoves(g.state, g.rules, id)
	if err != nil {
		return nil, err
	}

	moveLogger := g.gameLogger("MOVE").WithFields(logrus.Fields{
		"object_id": id,
		"from":      obj.Pos,
		"to":        dest,
	})

	if dest == obj.Pos {
		return nil, domain.IllegalMovef("%s is already at %s", id, dest)
	}
	path, ok := moves.PathTo(dest)
	if !ok {
		moveLogger.Debug("Move rejected: destination unreachable")
		return nil, domain.IllegalMovef("%s cannot reach %s", id, dest)
	}

	m, err := g.state.Map(obj.MapID)
	if err != nil {
		return nil, err
	}
	tile := m.Tile(dest)

	// Калькулятор мог быть подменен: правила типов и стек проверяем еще раз.
	// Мост в своем классе стека пропускает сквозь себя, но встать на него нельзя.
	if obj.Movement == nil {
		return nil, domain.IllegalMovef("%s cannot move", id)
	}
	for _, occupant := range g.state.ObjectsAt(obj.MapID, dest) {
		if allowed, ok := obj.Movement.TypeRules.Allows(occupant.Type); ok && !allowed {
			moveLogger.Debug("Move rejected: occupant forbids entry")
			return nil, domain.IllegalMovef("%s may not share a tile with %s", id, occupant.Type.Name)
		}
	}
	if !tile.Stacking.HasSpace(obj.Stacking) {
		moveLogger.Debug("Move rejected: stacking limit")
		return nil, fmt.Errorf("%w: %w at %s", domain.ErrIllegalMove, domain.ErrNoSpace, dest)
	}

	cmd := &MoveObject{
		ObjectID:  id,
		MapID:     obj.MapID,
		From:      obj.Pos,
		To:        dest,
		FromIndex: m.IndexOf(obj),
		Path:      path,
	}
	if err := g.execute(cmd); err != nil {
		return nil, err
	}

	moveLogger.WithField("cost", moves.Moves[dest].Cost).Debug("Move complete")
	return slices.Clone(path), nil
}

// AttackObject - атака одного объекта другим. Исход считается сразу и фиксируется в команде.
func (g *Game) AttackObject(attackerID, targetID domain.ObjectID) (systems.AttackOutcome, error) {
	attacker, err := g.state.Object(attackerID)
	if err != nil {
		return systems.AttackOutcome{}, err
	}
	target, err := g.state.Object(targetID)
	if err != nil {
		return systems.AttackOutcome{}, err
	}

	outcome, err := systems.ResolveAttack(attacker, target)
	if err != nil {
		return systems.AttackOutcome{}, err
	}

	m, err := g.state.Map(target.MapID)
	if err != nil {
		return systems.AttackOutcome{}, err
	}
	cmd := &AttackObject{AttackerID: attackerID, Outcome: outcome, Index: m.IndexOf(target)}
	if err := g.execute(cmd); err != nil {
		return systems.AttackOutcome{}, err
	}
	return outcome, nil
}

// --- ХОДЫ ---

// EndTurn передает ход следующему игроку и возвращает его
func (g *Game) EndTurn() (domain.PlayerID, error) {
	if len(g.state.Players) == 0 {
		return domain.NoPlayer, domain.ConfigErrorf("game has no players")
	}

	to := nextTurn(g.state)
	cmd := &EndTurn{
		From:       g.state.Turn,
		To:         to,
		FromPlayer: g.state.CurrentPlayer(),
		ToPlayer:   g.state.Players[to.Current].ID,
	}
	if err := g.execute(cmd); err != nil {
		return domain.NoPlayer, err
	}
	return cmd.ToPlayer, nil
}

func (g *Game) hasPlayer(id domain.PlayerID) bool {
	return slices.ContainsFunc(g.state.Players, func(p domain.Player) bool { return p.ID == id })
}

// --- ИСТОРИЯ ---

// Rollback откатывает до n последних команд. Возвращает, сколько реально откатилось:
// запрос больше истории - не ошибка.
func (g *Game) Rollback(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	done, err := g.history.Rollback(g.state, n)
	g.publishHistory(domain.EventRolledBack, n, done)
	return done, err
}

// Rollforward повторяет до n откатенных команд
func (g *Game) Rollforward(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	done, err := g.history.Rollforward(g.state, n)
	g.publishHistory(domain.EventRolledForward, n, done)
	return done, err
}

func (g *Game) publishHistory(t domain.EventType, requested, done int) {
	if done > 0 {
		g.Hub.Publish(domain.Event{Type: t, Count: done})
	}
	g.gameLogger(t.String()).WithFields(logrus.Fields{
		"requested": requested,
		"performed": done,
		"cursor":    g.history.Cursor(),
	}).Info("History changed")
}
