package engine

import (
	"fmt"
	"tactics-core/internal/domain"
)

// SpawnMap добавляет в партию карту. Содержимое карты (местность) посчитано заранее,
// так что повторное применение дает ту же самую карту.
type SpawnMap struct {
	Map *domain.GameMap
}

func (c *SpawnMap) Kind() domain.CommandKind { return domain.CommandSpawnMap }

func (c *SpawnMap) Execute(s *domain.GameState) error {
	if !c.Map.IsEmpty() {
		return fmt.Errorf("spawned map %s must be empty", c.Map.ID)
	}
	return s.InsertMap(c.Map.Clone())
}

func (c *SpawnMap) Rollback(s *domain.GameState) error {
	_, err := s.DeleteMap(c.Map.ID)
	return err
}

func (c *SpawnMap) Events(forward bool) []domain.Event {
	t := domain.EventMapSpawned
	if !forward {
		t = domain.EventMapDespawned
	}
	return []domain.Event{{Type: t, MapID: c.Map.ID, Count: c.Map.Width * c.Map.Height}}
}

// DespawnMap удаляет пустую карту (объекты нужно убрать раньше)
type DespawnMap struct {
	Map *domain.GameMap
}

func (c *DespawnMap) Kind() domain.CommandKind { return domain.CommandDespawnMap }

func (c *DespawnMap) Execute(s *domain.GameState) error {
	_, err := s.DeleteMap(c.Map.ID)
	return err
}

func (c *DespawnMap) Rollback(s *domain.GameState) error {
	return s.InsertMap(c.Map.Clone())
}

func (c *DespawnMap) Events(forward bool) []domain.Event {
	t := domain.EventMapDespawned
	if !forward {
		t = domain.EventMapSpawned
	}
	return []domain.Event{{Type: t, MapID: c.Map.ID, Count: c.Map.Width * c.Map.Height}}
}
