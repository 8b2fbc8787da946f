package agent

import (
	"context"
	"encoding/json"
	"tactics-core/internal/domain"
	"tactics-core/internal/systems"
	"tactics-core/pkg/api"
	"tactics-core/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Planner решает, что делать каждому объекту игрока.
// Работает по снапшоту, поэтому объекты считаются параллельно.
type Planner struct {
	Workers int
}

func NewPlanner(workers int) *Planner {
	if workers <= 0 {
		workers = 1
	}
	return &Planner{Workers: workers}
}

// Plan возвращает намерения для объектов player в порядке возрастания ID.
// Объекты, которым нечего делать, пропускаются.
func (p *Planner) Plan(ctx context.Context, snap *domain.GameState, rules *domain.Ruleset, calc systems.MovementCalculator, player domain.PlayerID) ([]api.IntentRequest, error) {
	var own []*domain.Object
	for _, id := range snap.SortedObjectIDs() {
		if o := snap.Objects[id]; o.Owner == player {
			own = append(own, o)
		}
	}

	// Каждая горутина пишет только в свою ячейку
	results := make([]*api.IntentRequest, len(own))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for i, obj := range own {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			req, err := decide(snap, rules, calc, obj)
			if err != nil {
				return err
			}
			results[i] = req
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan := make([]api.IntentRequest, 0, len(results))
	for _, r := range results {
		if r != nil {
			r.Player = uint8(player)
			plan = append(plan, *r)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "planner",
		"player":    player,
		"objects":   len(own),
		"intents":   len(plan),
	}).Debug("Plan ready")
	return plan, nil
}

// decide: враг в радиусе атаки - бьем; иначе идем к ближайшему врагу
func decide(snap *domain.GameState, rules *domain.Ruleset, calc systems.MovementCalculator, obj *domain.Object) (*api.IntentRequest, error) {
	enemies := enemiesOf(snap, obj)
	if len(enemies) == 0 {
		return nil, nil
	}

	if obj.CanAttack() {
		reach := max(obj.Attack.Range, 1)
		for _, e := range enemies {
			if obj.Pos.ChebyshevTo(e.Pos) <= reach {
				return intent(domain.CommandAttackObject, api.AttackPayload{AttackerID: uint64(obj.ID), TargetID: uint64(e.ID)})
			}
		}
	}

	if !obj.HasMovement() || obj.Movement.MovePoints <= 0 {
		return nil, nil
	}

	target := enemies[0]
	for _, e := range enemies[1:] {
		if obj.Pos.ChebyshevTo(e.Pos) < obj.Pos.ChebyshevTo(target.Pos) {
			target = e
		}
	}

	moves, err := calc.CalculateMoves(snap, rules, obj.ID)
	if err != nil {
		return nil, err
	}

	best, bestDist, found := obj.Pos, obj.Pos.ChebyshevTo(target.Pos), false
	// Destinations отсортированы по цене: при равном расстоянии берем более дешевый тайл
	for _, mv := range moves.Destinations() {
		if len(snap.ObjectsAt(obj.MapID, mv.Pos)) > 0 {
			continue
		}
		if d := mv.Pos.ChebyshevTo(target.Pos); d < bestDist {
			best, bestDist, found = mv.Pos, d, true
		}
	}
	if !found {
		return nil, nil
	}
	return intent(domain.CommandMoveObject, api.MovePayload{ObjectID: uint64(obj.ID), To: api.Position{X: best.X, Y: best.Y}})
}

// enemiesOf - атакуемые объекты другого игрока на той же карте, по возрастанию ID
func enemiesOf(snap *domain.GameState, obj *domain.Object) []*domain.Object {
	var out []*domain.Object
	for _, id := range snap.SortedObjectIDs() {
		o := snap.Objects[id]
		if o.MapID != obj.MapID || o.Owner == domain.NoPlayer || o.Owner == obj.Owner {
			continue
		}
		if o.CanBeAttacked() {
			out = append(out, o)
		}
	}
	return out
}

func intent(kind domain.CommandKind, payload any) (*api.IntentRequest, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &api.IntentRequest{Action: kind.String(), Payload: raw}, nil
}
