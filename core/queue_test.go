package translation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestQueuePreservesOrder(t *testing.T) {
	q := newQueue[int](4)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := q.Push(ctx, i); err != nil {
			t.Fatalf("failed to push %d: %v", i, err)
		}
	}

	for want := 0; want < 4; want++ {
		got, ok := q.Pop(ctx)
		if !ok {
			t.Fatalf("expected item %d, queue reported end of stream", want)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestQueuePushBlocksUntilConsumerPops(t *testing.T) {
	q := newQueue[string](1)
	ctx := context.Background()

	if err := q.Push(ctx, "first"); err != nil {
		t.Fatalf("failed to push first item: %v", err)
	}

	pushed := make(chan error, 1)
	go func() { pushed <- q.Push(ctx, "second") }()

	select {
	case <-pushed:
		t.Fatal("push on a full queue returned before a pop")
	case <-time.After(50 * time.Millisecond):
	}

	if _, ok := q.Pop(ctx); !ok {
		t.Fatal("expected first item")
	}

	select {
	case err := <-pushed:
		if err != nil {
			t.Fatalf("blocked push failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("push did not unblock after pop")
	}
}

func TestQueueDrainsBufferedItemsAfterClose(t *testing.T) {
	q := newQueue[int](4)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := q.Push(ctx, i); err != nil {
			t.Fatalf("failed to push %d: %v", i, err)
		}
	}
	q.Close()

	for want := 0; want < 3; want++ {
		got, ok := q.Pop(ctx)
		if !ok {
			t.Fatalf("expected buffered item %d after close", want)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	if _, ok := q.Pop(ctx); ok {
		t.Fatal("expected end of stream after draining a closed queue")
	}
}

func TestQueuePushAfterCloseFails(t *testing.T) {
	q := newQueue[int](1)
	q.Close()

	if err := q.Push(context.Background(), 1); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
}

func TestQueuePopHonoursContextCancellation(t *testing.T) {
	q := newQueue[int](1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := q.Pop(ctx); ok {
		t.Fatal("expected pop to fail on a cancelled context")
	}
}

func TestQueueCloseIsIdempotent(t *testing.T) {
	q := newQueue[int](1)
	q.Close()
	q.Close()
}
