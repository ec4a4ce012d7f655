package worker

import (
	"sync"
	"testing"
	"time"
)

func TestQueueRunsInOrder(t *testing.T) {
	q := NewQueue(16, 1)
	defer q.Close()

	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	wg.Add(10)
	for i := 0; i < 10; i++ {
		i := i
		if !q.Submit(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			wg.Done()
		}) {
			t.Fatalf("expected job %d to be accepted", i)
		}
	}
	wg.Wait()

	for i, v := range got {
		if v != i {
			t.Fatalf("expected jobs to run in order, got %v", got)
		}
	}
}

func TestQueueRejectsWhenFull(t *testing.T) {
	q := NewQueue(1, 1)
	defer q.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	q.Submit(func() {
		close(started)
		<-block
	})
	<-started

	if !q.Submit(func() {}) {
		t.Fatalf("expected the queue to hold one pending job")
	}
	if q.Submit(func() {}) {
		t.Fatalf("expected a full queue to reject the job")
	}
	close(block)
}

func TestQueueSurvivesPanics(t *testing.T) {
	q := NewQueue(4, 1)
	defer q.Close()

	q.Submit(func() { panic("boom") })
	ran := make(chan struct{})
	q.Submit(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatalf("expected the worker to keep running after a panic")
	}
}

func TestQueueClosed(t *testing.T) {
	q := NewQueue(4, 2)
	q.Close()
	q.Close()
	if q.Submit(func() {}) {
		t.Fatalf("expected a closed queue to reject jobs")
	}
}
