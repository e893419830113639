package session

import (
	"context"
	"log"
	"sync/atomic"
)

// Worker runs fill jobs off the input goroutine, one at a time. Results are
// handed to deliver, which must route them back to the goroutine that owns
// the Session.
type Worker struct {
	// Verbose logs dropped taps.
	Verbose bool

	jobs    chan Job
	busy    atomic.Bool
	deliver func(*Pending, error)
}

// NewWorker creates a worker that reports each finished job to deliver.
func NewWorker(deliver func(*Pending, error)) *Worker {
	return &Worker{
		jobs:    make(chan Job, 1),
		deliver: deliver,
	}
}

// Submit queues j unless a job is already in flight, in which case j is
// dropped and Submit returns false.
func (w *Worker) Submit(j Job) bool {
	if !w.busy.CompareAndSwap(false, true) {
		if w.Verbose {
			log.Printf("fill busy, dropping tap at %v", j.Seed)
		}
		return false
	}
	w.jobs <- j
	return true
}

// Busy reports whether a job is queued or running.
func (w *Worker) Busy() bool { return w.busy.Load() }

// Run processes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-w.jobs:
			p, err := j.Run()
			if ctx.Err() != nil {
				return
			}
			w.busy.Store(false)
			if w.deliver != nil {
				w.deliver(p, err)
			}
		}
	}
}
