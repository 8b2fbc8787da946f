package engine

import (
	"fmt"
	"tactics-core/internal/domain"
	"tactics-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogEntry - запись лога команд
type LogEntry struct {
	ID      uuid.UUID
	Seq     uint64
	Command Command
	Status  CommandStatus
}

// EntryObserver вызывается после каждого применения (forward=true) или отмены команды
type EntryObserver func(e *LogEntry, forward bool)

// CommandLog - упорядоченный лог команд с курсором.
//
//	entries[:cursor]  - применены (Executed)
//	entries[cursor:]  - откатены, но сохранены для rollforward (RolledBack)
//
// Новая команда после отката отбрасывает хвост: ветвления истории нет.
// Лог не потокобезопасен, им владеет один писатель (Game).
type CommandLog struct {
	entries  []*LogEntry
	cursor   int
	seq      uint64
	observer EntryObserver
}

func NewCommandLog() *CommandLog {
	return &CommandLog{entries: make([]*LogEntry, 0, 64)}
}

// SetObserver - подписка на применение/отмену (для рассылки событий)
func (l *CommandLog) SetObserver(fn EntryObserver) {
	l.observer = fn
}

// Len - общее число записей (применённые + откатенные)
func (l *CommandLog) Len() int { return len(l.entries) }

// Cursor - сколько записей сейчас применено
func (l *CommandLog) Cursor() int { return l.cursor }

// Entries - копия списка записей (для отладки и отображения истории)
func (l *CommandLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	for i, e := range l.entries {
		out[i] = *e
	}
	return out
}

// Execute применяет команду и дописывает ее в лог.
// Если команда не применилась, лог не меняется (и хвост не отбрасывается).
func (l *CommandLog) Execute(s *domain.GameState, cmd Command) (*LogEntry, error) {
	entry := &LogEntry{
		ID:      uuid.New(),
		Command: cmd,
		Status:  StatusPending,
	}

	if err := cmd.Execute(s); err != nil {
		return nil, fmt.Errorf("execute %s: %w", cmd.Kind(), err)
	}

	if dropped := len(l.entries) - l.cursor; dropped > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "command_log",
			"dropped":   dropped,
		}).Debug("Rolled back tail discarded")
		clear(l.entries[l.cursor:])
	}

	l.seq++
	entry.Seq = l.seq
	entry.Status = StatusExecuted
	l.entries = append(l.entries[:l.cursor], entry)
	l.cursor++

	logger.Log.WithFields(logrus.Fields{
		"component": "command_log",
		"command":   cmd.Kind(),
		"entry_id":  entry.ID,
		"seq":       entry.Seq,
	}).Debug("Command executed")

	l.notify(entry, true)
	return entry, nil
}

// Rollback откатывает до n последних применённых команд, от новых к старым.
// Если история кончилась раньше - это не ошибка, просто возвращается сколько вышло.
// Ошибка возможна только если отмена не применилась (битое состояние): тогда
// откат останавливается на этой команде.
func (l *CommandLog) Rollback(s *domain.GameState, n int) (int, error) {
	done := 0
	for done < n && l.cursor > 0 {
		entry := l.entries[l.cursor-1]
		if err := entry.Command.Rollback(s); err != nil {
			return done, fmt.Errorf("rollback %s (seq %d): %w", entry.Command.Kind(), entry.Seq, err)
		}
		entry.Status = StatusRolledBack
		l.cursor--
		done++
		l.notify(entry, false)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "command_log",
		"requested": n,
		"performed": done,
		"cursor":    l.cursor,
	}).Debug("Rollback")
	return done, nil
}

// Rollforward повторно применяет до n откатенных команд в исходном порядке
func (l *CommandLog) Rollforward(s *domain.GameState, n int) (int, error) {
	done := 0
	for done < n && l.cursor < len(l.entries) {
		entry := l.entries[l.cursor]
		if err := entry.Command.Execute(s); err != nil {
			return done, fmt.Errorf("rollforward %s (seq %d): %w", entry.Command.Kind(), entry.Seq, err)
		}
		entry.Status = StatusExecuted
		l.cursor++
		done++
		l.notify(entry, true)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "command_log",
		"requested": n,
		"performed": done,
		"cursor":    l.cursor,
	}).Debug("Rollforward")
	return done, nil
}

func (l *CommandLog) notify(e *LogEntry, forward bool) {
	if l.observer != nil {
		l.observer(e, forward)
	}
}
