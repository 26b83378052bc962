package buttons

import (
	"context"
	"errors"
	"sync"
)

// QueueCapacity is the number of pending events the app queue holds.
const QueueCapacity = 8

var ErrQueueFreed = errors.New("input queue freed")

// Queue is a bounded FIFO of events between input callbacks and the run loop.
type Queue struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = QueueCapacity
	}
	return &Queue{ch: make(chan Event, capacity), done: make(chan struct{})}
}

// Put appends ev, blocking while the queue is full.
func (q *Queue) Put(ctx context.Context, ev Event) error {
	select {
	case <-q.done:
		return ErrQueueFreed
	default:
	}
	select {
	case q.ch <- ev:
		return nil
	case <-q.done:
		return ErrQueueFreed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get removes the oldest event, blocking while the queue is empty.
func (q *Queue) Get(ctx context.Context) (Event, error) {
	select {
	case <-q.done:
		return Event{}, ErrQueueFreed
	default:
	}
	select {
	case ev := <-q.ch:
		return ev, nil
	case <-q.done:
		return Event{}, ErrQueueFreed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

func (q *Queue) Len() int { return len(q.ch) }
func (q *Queue) Cap() int { return cap(q.ch) }

// Free releases the queue. Blocked and later Put/Get calls return
// ErrQueueFreed. Pending events are dropped.
func (q *Queue) Free() {
	q.once.Do(func() { close(q.done) })
}
