package network

import (
	"sync"
	"tactics-core/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_FanOut(t *testing.T) {
	b := NewBroadcaster(4)
	first := b.Register("first")
	second := b.Register("second")
	assert.Equal(t, 2, b.SubscriberCount())

	b.Publish(domain.Event{Type: domain.EventMapSpawned}, domain.Event{Type: domain.EventTurnEnded})

	for _, ch := range []<-chan Envelope{first, second} {
		env := <-ch
		assert.Equal(t, uint64(1), env.Seq)
		assert.Equal(t, domain.EventMapSpawned, env.Event.Type)
		env = <-ch
		assert.Equal(t, uint64(2), env.Seq)
		assert.Equal(t, domain.EventTurnEnded, env.Event.Type)
	}
}

func TestBroadcaster_SlowSubscriberDropsEvents(t *testing.T) {
	b := NewBroadcaster(2)
	ch := b.Register("slow")

	for range 5 {
		b.Publish(domain.Event{Type: domain.EventMoveComplete})
	}

	assert.Len(t, ch, 2)
	assert.Equal(t, uint64(3), b.Dropped())
}

func TestBroadcaster_RegisterReplacesChannel(t *testing.T) {
	b := NewBroadcaster(1)
	old := b.Register("ws")
	fresh := b.Register("ws")

	_, open := <-old
	assert.False(t, open, "Старый канал закрыт")
	assert.Equal(t, 1, b.SubscriberCount())

	b.Unregister("ws")
	_, open = <-fresh
	assert.False(t, open)
	assert.False(t, b.HasSubscriber("ws"))

	b.Unregister("ws")
	b.Publish(domain.Event{Type: domain.EventTurnEnded})
}

func TestBroadcaster_ConcurrentPublish(t *testing.T) {
	b := NewBroadcaster(1000)
	ch := b.Register("all")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				b.Publish(domain.Event{Type: domain.EventMoveComplete})
			}
		}()
	}
	wg.Wait()

	require.Len(t, ch, 500)
	seen := make(map[uint64]bool)
	for range 500 {
		seen[(<-ch).Seq] = true
	}
	assert.Len(t, seen, 500, "Номера уникальны")
}
