package engine

import (
	"fmt"
	"tactics-core/internal/domain"
)

// EndTurn передает ход следующему игроку
type EndTurn struct {
	From domain.TurnState
	To   domain.TurnState

	// Игроки, для событий
	FromPlayer domain.PlayerID
	ToPlayer   domain.PlayerID
}

// nextTurn - круговая очередь игроков. Номер хода растет, когда круг замыкается.
func nextTurn(s *domain.GameState) domain.TurnState {
	next := s.Turn
	next.Current++
	if next.Current >= len(s.Players) {
		next.Current = 0
		next.Number++
	}
	return next
}

func (c *EndTurn) Kind() domain.CommandKind { return domain.CommandEndTurn }

func (c *EndTurn) Execute(s *domain.GameState) error {
	if s.Turn != c.From {
		return fmt.Errorf("turn is %+v, expected %+v", s.Turn, c.From)
	}
	s.Turn = c.To
	return nil
}

func (c *EndTurn) Rollback(s *domain.GameState) error {
	if s.Turn != c.To {
		return fmt.Errorf("turn is %+v, expected %+v", s.Turn, c.To)
	}
	s.Turn = c.From
	return nil
}

func (c *EndTurn) Events(forward bool) []domain.Event {
	if forward {
		return []domain.Event{{Type: domain.EventTurnEnded, Player: c.ToPlayer, Count: c.To.Number}}
	}
	return []domain.Event{{Type: domain.EventTurnEnded, Player: c.FromPlayer, Count: c.From.Number}}
}
