package cycle

import (
	"context"
	"errors"
	"sync"
)

// DefaultQueueSize is the number of pending signals a Queue buffers
const DefaultQueueSize = 64

var (
	// ErrQueueFull is returned by Submit when the buffer is exhausted
	ErrQueueFull = errors.New("signal queue is full")
	// ErrQueueStopped is returned by Submit after Stop
	ErrQueueStopped = errors.New("signal queue is stopped")
)

// Queue serializes signals from any number of producers into a single
// consumer, so each signal is processed to completion before the next.
type Queue struct {
	signals chan Signal
	done    chan struct{}

	mu      sync.RWMutex
	stopped bool
	once    sync.Once
	wg      sync.WaitGroup
}

// NewQueue creates a queue buffering up to size signals
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		signals: make(chan Signal, size),
		done:    make(chan struct{}),
	}
}

// Submit enqueues a signal without blocking
func (q *Queue) Submit(sig Signal) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return ErrQueueStopped
	}

	select {
	case q.signals <- sig:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start runs the consumer on its own goroutine until ctx is done or Stop
func (q *Queue) Start(ctx context.Context, c *Controller) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.Run(ctx, c)
	}()
}

// Run feeds queued signals into c one at a time. It returns when ctx is
// cancelled, or after Stop once every accepted signal has been handled.
func (q *Queue) Run(ctx context.Context, c *Controller) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.done:
			q.drain(c)
			return
		case sig := <-q.signals:
			c.Handle(sig)
		}
	}
}

// drain handles what is still buffered. Submit refuses new signals once
// stopped is set, so the buffer only shrinks here.
func (q *Queue) drain(c *Controller) {
	for {
		select {
		case sig := <-q.signals:
			c.Handle(sig)
		default:
			return
		}
	}
}

// Pending returns the number of signals waiting to be handled
func (q *Queue) Pending() int {
	return len(q.signals)
}

// Stop rejects further submissions and waits for a consumer started with
// Start to handle the accepted ones and exit. Safe to call more than once.
func (q *Queue) Stop() {
	q.once.Do(func() {
		q.mu.Lock()
		q.stopped = true
		q.mu.Unlock()
		close(q.done)
	})
	q.wg.Wait()
}
