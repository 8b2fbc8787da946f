package network

import (
	"sync"
	"sync/atomic"
	"tactics-core/internal/domain"
	"tactics-core/pkg/logger"
)

// Envelope - событие с порядковым номером публикации
type Envelope struct {
	Seq   uint64
	Event domain.Event
}

// Broadcaster занимается только рассылкой событий подписчикам.
// Медленный подписчик теряет события, а не тормозит ядро.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: имя подписчика -> Личный канал
	subscribers map[string]chan Envelope
	buffer      int

	seq     atomic.Uint64
	dropped atomic.Uint64
}

func NewBroadcaster(buffer int) *Broadcaster {
	if buffer <= 0 {
		buffer = 100
	}
	return &Broadcaster{
		subscribers: make(map[string]chan Envelope),
		buffer:      buffer,
	}
}

// Register создает личный канал подписчика. Старый канал с тем же именем закрывается.
func (b *Broadcaster) Register(name string) <-chan Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[name]; ok {
		close(old)
	}

	ch := make(chan Envelope, b.buffer)
	b.subscribers[name] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[name]; ok {
		close(ch)
		delete(b.subscribers, name)
	}
}

// Publish рассылает события всем подписчикам
func (b *Broadcaster) Publish(events ...domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ev := range events {
		env := Envelope{Seq: b.seq.Add(1), Event: ev}
		for name, ch := range b.subscribers {
			select {
			case ch <- env:
			default:
				b.dropped.Add(1)
				logger.Log.WithField("subscriber", name).Debug("Hub: channel full, event dropped")
			}
		}
	}
}

// HasSubscriber проверяет, есть ли подписчик с таким именем
func (b *Broadcaster) HasSubscriber(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[name]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько событий не влезло в каналы подписчиков
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}
