package api

import (
	"errors"
	"tactics-core/pkg/mapgen"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p SpawnPayload) Validate() error {
	if p.Template == "" {
		return errors.New("template is required")
	}
	return nil
}

func (p MovePayload) Validate() error {
	if p.ObjectID == 0 {
		return errors.New("objectId is required")
	}
	return nil
}

func (p DespawnPayload) Validate() error {
	if p.ObjectID == 0 {
		return errors.New("objectId is required")
	}
	return nil
}

func (p AttackPayload) Validate() error {
	if p.AttackerID == 0 || p.TargetID == 0 {
		return errors.New("attackerId and targetId are required")
	}
	if p.AttackerID == p.TargetID {
		return errors.New("object cannot attack itself")
	}
	return nil
}

func (p MapPayload) Validate() error {
	if p.Layout != "" {
		return nil
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New("either layout or positive width and height are required")
	}
	if p.Width > mapgen.MaxSide || p.Height > mapgen.MaxSide {
		return errors.New("map is too large")
	}
	return nil
}

func (p DespawnMapPayload) Validate() error {
	if p.MapID == 0 {
		return errors.New("mapId is required")
	}
	return nil
}

func (p HistoryPayload) Validate() error {
	if p.Count <= 0 {
		return errors.New("count must be positive")
	}
	return nil
}
