package engine

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/internal/systems"
)

// --- SPAWN ---

// SpawnObject ставит на карту новый объект. ID зарезервирован при создании команды,
// поэтому rollforward восстанавливает тот же самый объект.
type SpawnObject struct {
	Object *domain.Object
}

func (c *SpawnObject) Kind() domain.CommandKind { return domain.CommandSpawnObject }

func (c *SpawnObject) Execute(s *domain.GameState) error {
	return s.InsertObject(c.Object.Clone(), -1)
}

func (c *SpawnObject) Rollback(s *domain.GameState) error {
	_, err := s.DeleteObject(c.Object.ID)
	return err
}

func (c *SpawnObject) Events(forward bool) []domain.Event {
	ev := domain.Event{
		Type:     domain.EventObjectSpawned,
		ObjectID: c.Object.ID,
		MapID:    c.Object.MapID,
		From:     c.Object.Pos,
		To:       c.Object.Pos,
		Player:   c.Object.Owner,
	}
	if !forward {
		ev.Type = domain.EventObjectDespawned
	}
	return []domain.Event{ev}
}

// --- DESPAWN ---

// DespawnObject убирает объект. Хранит полную копию и место в тайле, чтобы вернуть как было.
type DespawnObject struct {
	Object *domain.Object
	Index  int
}

func (c *DespawnObject) Kind() domain.CommandKind { return domain.CommandDespawnObject }

func (c *DespawnObject) Execute(s *domain.GameState) error {
	_, err := s.DeleteObject(c.Object.ID)
	return err
}

func (c *DespawnObject) Rollback(s *domain.GameState) error {
	return s.InsertObject(c.Object.Clone(), c.Index)
}

func (c *DespawnObject) Events(forward bool) []domain.Event {
	ev := domain.Event{
		Type:     domain.EventObjectDespawned,
		ObjectID: c.Object.ID,
		MapID:    c.Object.MapID,
		From:     c.Object.Pos,
		To:       c.Object.Pos,
		Player:   c.Object.Owner,
	}
	if !forward {
		ev.Type = domain.EventObjectSpawned
	}
	return []domain.Event{ev}
}

// --- MOVE ---

// MoveObject = снять с From + поставить в To. Промежуточные тайлы пути не занимаются.
type MoveObject struct {
	ObjectID  domain.ObjectID
	MapID     domain.MapID
	From      domain.TilePos
	To        domain.TilePos
	FromIndex int // место в списке тайла From, для точного отката
	Path      []domain.TilePos
}

func (c *MoveObject) Kind() domain.CommandKind { return domain.CommandMoveObject }

func (c *MoveObject) Execute(s *domain.GameState) error {
	return c.relocate(s, c.From, c.To, -1)
}

func (c *MoveObject) Rollback(s *domain.GameState) error {
	return c.relocate(s, c.To, c.From, c.FromIndex)
}

func (c *MoveObject) relocate(s *domain.GameState, expect, to domain.TilePos, index int) error {
	o, err := s.Object(c.ObjectID)
	if err != nil {
		return err
	}
	if o.MapID != c.MapID || o.Pos != expect {
		return fmt.Errorf("%s is at %s on %s, expected %s on %s", o.ID, o.Pos, o.MapID, expect, c.MapID)
	}
	_, _, err = s.RelocateObject(c.ObjectID, to, index)
	return err
}

func (c *MoveObject) Events(forward bool) []domain.Event {
	from, to := c.From, c.To
	if !forward {
		from, to = to, from
	}
	return []domain.Event{{
		Type:     domain.EventMoveComplete,
		ObjectID: c.ObjectID,
		MapID:    c.MapID,
		From:     from,
		To:       to,
	}}
}

// --- ATTACK ---

// AttackObject применяет заранее посчитанный исход атаки.
// Откат возвращает цель в состояние "до" (в том числе на прежнее место в тайле).
type AttackObject struct {
	AttackerID domain.ObjectID
	Outcome    systems.AttackOutcome
	Index      int // место цели в тайле (для отката уничтожения)
}

func (c *AttackObject) Kind() domain.CommandKind { return domain.CommandAttackObject }

func (c *AttackObject) Execute(s *domain.GameState) error {
	target := c.Outcome.Before
	if _, err := s.Object(target.ID); err != nil {
		return err
	}
	if c.Outcome.Destroyed {
		_, err := s.DeleteObject(target.ID)
		return err
	}
	return s.ReplaceObject(c.Outcome.After.Clone())
}

func (c *AttackObject) Rollback(s *domain.GameState) error {
	if c.Outcome.Destroyed {
		return s.InsertObject(c.Outcome.Before.Clone(), c.Index)
	}
	return s.ReplaceObject(c.Outcome.Before.Clone())
}

func (c *AttackObject) Events(forward bool) []domain.Event {
	target := c.Outcome.Before
	attacked := domain.Event{
		Type:     domain.EventObjectAttacked,
		ObjectID: c.AttackerID,
		TargetID: target.ID,
		MapID:    target.MapID,
		To:       target.Pos,
		Amount:   c.Outcome.Damage,
	}
	if !forward {
		attacked.Amount = -c.Outcome.Damage
		if c.Outcome.Destroyed {
			return []domain.Event{attacked, {
				Type:     domain.EventObjectSpawned,
				ObjectID: target.ID,
				MapID:    target.MapID,
				From:     target.Pos,
				To:       target.Pos,
				Player:   target.Owner,
			}}
		}
		if c.Outcome.Captured {
			return []domain.Event{attacked, {
				Type:     domain.EventObjectCaptured,
				ObjectID: target.ID,
				MapID:    target.MapID,
				To:       target.Pos,
				Player:   target.Owner,
			}}
		}
		return []domain.Event{attacked}
	}

	events := []domain.Event{attacked}
	switch {
	case c.Outcome.Destroyed:
		events = append(events, domain.Event{
			Type:     domain.EventObjectDestroyed,
			ObjectID: target.ID,
			MapID:    target.MapID,
			To:       target.Pos,
			Player:   target.Owner,
		})
	case c.Outcome.Captured:
		events = append(events, domain.Event{
			Type:     domain.EventObjectCaptured,
			ObjectID: target.ID,
			MapID:    target.MapID,
			To:       target.Pos,
			Player:   c.Outcome.After.Owner,
		})
	}
	return events
}
