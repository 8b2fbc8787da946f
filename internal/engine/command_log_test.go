package engine

import (
	"errors"
	"tactics-core/internal/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterCommand сдвигает номер хода на Delta
type counterCommand struct {
	Delta int
	Fail  bool
}

func (c *counterCommand) Kind() domain.CommandKind { return domain.CommandEndTurn }

func (c *counterCommand) Execute(s *domain.GameState) error {
	if c.Fail {
		return errors.New("boom")
	}
	s.Turn.Number += c.Delta
	return nil
}

func (c *counterCommand) Rollback(s *domain.GameState) error {
	s.Turn.Number -= c.Delta
	return nil
}

func (c *counterCommand) Events(bool) []domain.Event { return nil }

func newCounterState() *domain.GameState {
	s := domain.NewGameState(uuid.New(), nil)
	s.Turn.Number = 0
	return s
}

func TestCommandLog_ExecuteAndRollback(t *testing.T) {
	s := newCounterState()
	log := NewCommandLog()

	for _, d := range []int{1, 10, 100} {
		_, err := log.Execute(s, &counterCommand{Delta: d})
		require.NoError(t, err)
	}
	assert.Equal(t, 111, s.Turn.Number)
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, 3, log.Cursor())

	done, err := log.Rollback(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, done)
	assert.Equal(t, 1, s.Turn.Number)
	assert.Equal(t, 3, log.Len(), "Откатенные записи хранятся")

	entries := log.Entries()
	assert.Equal(t, StatusExecuted, entries[0].Status)
	assert.Equal(t, StatusRolledBack, entries[1].Status)
	assert.Equal(t, StatusRolledBack, entries[2].Status)

	done, err = log.Rollforward(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, done)
	assert.Equal(t, 11, s.Turn.Number)
}

func TestCommandLog_ClampsToHistory(t *testing.T) {
	s := newCounterState()
	log := NewCommandLog()
	_, _ = log.Execute(s, &counterCommand{Delta: 1})
	_, _ = log.Execute(s, &counterCommand{Delta: 2})

	done, err := log.Rollback(s, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, done)
	assert.Equal(t, 0, s.Turn.Number)

	done, err = log.Rollback(s, 1)
	require.NoError(t, err)
	assert.Zero(t, done, "Нечего откатывать")

	done, err = log.Rollforward(s, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, s.Turn.Number)

	done, err = log.Rollforward(s, 1)
	require.NoError(t, err)
	assert.Zero(t, done)
}

func TestCommandLog_NewCommandDiscardsTail(t *testing.T) {
	s := newCounterState()
	log := NewCommandLog()
	for _, d := range []int{1, 2, 4} {
		_, _ = log.Execute(s, &counterCommand{Delta: d})
	}

	_, err := log.Rollback(s, 2)
	require.NoError(t, err)

	entry, err := log.Execute(s, &counterCommand{Delta: 8})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), entry.Seq, "Порядковые номера не переиспользуются")
	assert.Equal(t, 2, log.Len())
	assert.Equal(t, 2, log.Cursor())
	assert.Equal(t, 9, s.Turn.Number)

	done, _ := log.Rollforward(s, 1)
	assert.Zero(t, done, "Хвост отброшен")
}

func TestCommandLog_FailedCommandKeepsLog(t *testing.T) {
	s := newCounterState()
	log := NewCommandLog()
	_, _ = log.Execute(s, &counterCommand{Delta: 1})
	_, _ = log.Rollback(s, 1)

	_, err := log.Execute(s, &counterCommand{Fail: true})
	assert.Error(t, err)
	assert.Equal(t, 1, log.Len(), "Неудачная команда не отбрасывает хвост")
	assert.Zero(t, log.Cursor())

	done, _ := log.Rollforward(s, 1)
	assert.Equal(t, 1, done)
}

func TestCommandLog_Observer(t *testing.T) {
	s := newCounterState()
	log := NewCommandLog()

	var calls []bool
	log.SetObserver(func(_ *LogEntry, forward bool) { calls = append(calls, forward) })

	_, _ = log.Execute(s, &counterCommand{Delta: 1})
	_, _ = log.Rollback(s, 1)
	_, _ = log.Rollforward(s, 1)

	assert.Equal(t, []bool{true, false, true}, calls)
}
