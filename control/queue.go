package control

import (
	"context"
	"sync"
)

// Queue is the surface's event loop. Functions scheduled from any
// goroutine run one at a time, in order, on the goroutine calling Run.
// Scheduling never blocks, so observers may schedule from inside a
// running function.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	onIdle  func()
}

func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

func (q *Queue) Schedule(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// OnIdle sets a function run on the loop goroutine whenever the queue
// has been drained. Call before Run.
func (q *Queue) OnIdle(fn func()) {
	q.onIdle = fn
}

// Run processes scheduled functions until ctx is cancelled.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
		if q.drain() && q.onIdle != nil {
			q.onIdle()
		}
	}
}

func (q *Queue) drain() bool {
	ran := false
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return ran
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		fn()
		ran = true
	}
}

// Do schedules fn and waits for it to finish or ctx to end.
func (q *Queue) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	q.Schedule(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
