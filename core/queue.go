package translation

import (
	"context"
	"sync"
)

// queue is a bounded single-producer/single-consumer FIFO connecting live
// pipeline stages. Close is the end-of-stream sentinel: the producer stops
// pushing, the consumer drains what is buffered and then observes closure,
// so nobody can deadlock on an empty queue after shutdown.
type queue[T any] struct {
	items chan T
	done  chan struct{}

	closeOnce sync.Once
}

func newQueue[T any](capacity int) *queue[T] {
	return &queue[T]{
		items: make(chan T, capacity),
		done:  make(chan struct{}),
	}
}

// Push blocks while the queue is full. It fails once the queue is closed or
// the context is cancelled; the item is dropped in that case.
func (q *queue[T]) Push(ctx context.Context, item T) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case q.items <- item:
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop blocks until an item is available. It returns false once the queue is
// closed and fully drained, or when the context is cancelled.
func (q *queue[T]) Pop(ctx context.Context) (T, bool) {
	var zero T

	select {
	case item := <-q.items:
		return item, true
	case <-ctx.Done():
		return zero, false
	case <-q.done:
		// Drain anything buffered before reporting end of stream.
		select {
		case item := <-q.items:
			return item, true
		case <-ctx.Done():
			return zero, false
		default:
			return zero, false
		}
	}
}

// Close marks end of stream. Idempotent.
func (q *queue[T]) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}

// Len reports how many items are currently buffered.
func (q *queue[T]) Len() int { return len(q.items) }
