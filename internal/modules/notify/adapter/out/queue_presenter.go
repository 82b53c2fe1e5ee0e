package out

import (
	"context"
	"sync"

	"lifeagent/internal/modules/notify/domain"
	notifyout "lifeagent/internal/modules/notify/port/out"
	"lifeagent/internal/platform/clock"
	"lifeagent/internal/platform/id"
)

// RingQueue keeps the most recent events until the extension drains them.
// When full, the oldest event is dropped.
type RingQueue struct {
	clock    clock.Clock
	ids      id.Generator
	capacity int

	mu    sync.Mutex
	items []domain.Queued
}

func NewRingQueue(clock clock.Clock, ids id.Generator, capacity int) notifyout.Queue {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingQueue{clock: clock, ids: ids, capacity: capacity, items: make([]domain.Queued, 0, capacity)}
}

func (q *RingQueue) Name() string { return "queue" }

func (q *RingQueue) Present(_ context.Context, event domain.Event) error {
	item := domain.Queued{ID: q.ids.New(), Event: event, CreatedAt: q.clock.Now()}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == q.capacity {
		copy(q.items, q.items[1:])
		q.items[len(q.items)-1] = item
		return nil
	}
	q.items = append(q.items, item)
	return nil
}

func (q *RingQueue) Drain(_ context.Context) ([]domain.Queued, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = make([]domain.Queued, 0, q.capacity)
	return out, nil
}
