package worker

import (
	"sync"

	"github.com/getsentry/sentry-go"
)

// Queue runs submitted functions on a fixed set of goroutines. Submitting never blocks: when the
// queue is full the function is rejected.
type Queue struct {
	jobs chan func()
	done chan struct{}

	once sync.Once
	wg   sync.WaitGroup
}

// NewQueue starts workers goroutines consuming a queue holding up to size pending functions. A queue
// with a single worker runs functions in the order they were submitted.
func NewQueue(size, workers int) *Queue {
	if workers < 1 {
		workers = 1
	}
	q := &Queue{
		jobs: make(chan func(), size),
		done: make(chan struct{}),
	}
	q.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go q.worker()
	}
	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for {
		select {
		case <-q.done:
			return
		case f := <-q.jobs:
			run(f)
		}
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f. It returns false if the queue is full or closed.
func (q *Queue) Submit(f func()) bool {
	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.jobs <- f:
		return true
	default:
		return false
	}
}

// Pending returns the amount of functions waiting to be run.
func (q *Queue) Pending() int {
	return len(q.jobs)
}

// Close stops the workers and waits for the function currently running to finish. Pending functions
// are dropped.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.done)
	})
	q.wg.Wait()
}
